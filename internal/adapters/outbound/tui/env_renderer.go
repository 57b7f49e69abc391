package tui

import (
	"fmt"
	"strings"

	"github.com/tplkit/tplkit/internal/domain"
)

// RenderEnvReport renders the fixed-list environment check.
func RenderEnvReport(report *domain.EnvReport) string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Checking environment variables") + "\n")

	if len(report.Set) > 0 {
		section(&b, "Set variables", len(report.Set))
		for _, name := range report.Set {
			fmt.Fprintf(&b, "    %s %s\n", passIcon, name)
		}
	}

	if len(report.MissingRequired) > 0 {
		section(&b, "Missing required variables", len(report.MissingRequired))
		b.WriteString("    " + dimStyle.Render("These must be set before proceeding:") + "\n\n")
		renderMissing(&b, report.MissingRequired)
	}

	if len(report.MissingOptional) > 0 {
		section(&b, "Optional variables (not set)", len(report.MissingOptional))
		for _, v := range report.MissingOptional {
			fmt.Fprintf(&b, "    %s %s  %s\n", skipIcon, padRight(v.Name, 20), dimStyle.Render(v.Description))
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	if report.OK() {
		b.WriteString("  " + passStyle.Render("All required environment variables are set!") + "\n")
	} else {
		b.WriteString("  " + errorTagStyle.Render("Setup incomplete. Please set the required variables.") + "\n")
		b.WriteString("  " + hintStyle.Render("See CLAUDE.md for detailed setup instructions.") + "\n")
	}

	return b.String()
}

// RenderIntegrationEnvReport renders the per-integration environment check.
func RenderIntegrationEnvReport(report *domain.IntegrationEnvReport) string {
	var b strings.Builder
	rec := report.Integration

	title := titleStyle.Render("Checking: "+rec.Name) + "  " + dimStyle.Render(report.Category.Label())
	b.WriteString("\n  " + title + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if report.WebCompatible {
		fmt.Fprintf(&b, "  %s Web compatible: Yes\n", passIcon)
	} else {
		fmt.Fprintf(&b, "\n  %s %s\n", warnIcon,
			warnTagStyle.Render(fmt.Sprintf("WARNING: %s is NOT compatible with web sessions.", rec.Name)))
		b.WriteString("    " + dimStyle.Render("This integration requires a local CLI (stdio transport).") + "\n")
		b.WriteString("    " + dimStyle.Render("It will not work in a remote sandbox environment.") + "\n")
	}

	if rec.AuthType != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", infoTagStyle.Render("Authentication:"), strings.ToUpper(rec.AuthType))
		if rec.AuthType == "oauth" && rec.OAuthInstructions != "" {
			b.WriteString("    " + rec.OAuthInstructions + "\n")
		}
	}

	if len(rec.EnvVars) == 0 {
		fmt.Fprintf(&b, "\n  %s No environment variables required.\n", passIcon)
		return b.String()
	}

	section(&b, "Environment Variables", len(rec.EnvVars))
	missing := make(map[string]bool, len(report.Env.MissingRequired))
	for _, v := range report.Env.MissingRequired {
		missing[v.Name] = true
	}
	for _, v := range rec.EnvVars {
		if missing[v.Name] {
			fmt.Fprintf(&b, "    %s %s %s\n", failIcon, padRight(v.Name, 24), failStyle.Render("Missing"))
		} else {
			fmt.Fprintf(&b, "    %s %s %s\n", passIcon, padRight(v.Name, 24), passStyle.Render("Set"))
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	if report.Env.OK() {
		b.WriteString("  " + passStyle.Render("All requirements met for "+rec.Name) + "\n")
		return b.String()
	}

	b.WriteString("  " + warnTagStyle.Render("MISSING REQUIRED VARIABLES:") + "\n\n")
	renderMissing(&b, report.Env.MissingRequired)
	b.WriteString("  " + hintStyle.Render("Set these variables and run this check again.") + "\n")
	return b.String()
}

// RenderNotFound renders the unknown-integration message with every
// available catalog entry.
func RenderNotFound(query string, c *domain.Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n  %s %s\n", failIcon,
		errorTagStyle.Render(fmt.Sprintf("Integration %q not found in catalog.", query)))
	b.WriteString("\n  " + titleStyle.Render("Available integrations:") + "\n")

	for _, s := range c.Sections() {
		section(&b, pluralLabel(s.Category), len(s.Records))
		for _, r := range s.Records {
			fmt.Fprintf(&b, "    - %s: %s\n", r.ID, r.Name)
		}
	}
	return b.String()
}

func renderMissing(b *strings.Builder, vars []domain.EnvVarRequirement) {
	for _, v := range vars {
		fmt.Fprintf(b, "    %s %s\n", failIcon, titleStyle.Render(v.Name))
		if v.Description != "" {
			fmt.Fprintf(b, "      └─ %s\n", v.Description)
		}
		if v.HowToGet != "" {
			fmt.Fprintf(b, "      └─ %s %s\n", dimStyle.Render("How to get:"), v.HowToGet)
		}
		b.WriteString("\n")
	}
}

func pluralLabel(c domain.Category) string {
	return c.Label() + "s"
}
