package application

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tplkit/tplkit/internal/domain"
	"github.com/tplkit/tplkit/internal/domain/checklist"
)

// ChecklistService runs the template scaffolding checklist against a project.
type ChecklistService struct {
	git    domain.GitInfo
	logger *zap.Logger
}

func NewChecklistService(git domain.GitInfo, logger *zap.Logger) *ChecklistService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChecklistService{git: git, logger: logger}
}

// Run executes every check category cfg enables. Opt-in categories such
// as Git run only when cfg includes them. fs must be rooted
// at projectPath.
func (s *ChecklistService) Run(projectPath string, fs domain.ProjectFS, cfg domain.ProjectConfig) *domain.ChecklistReport {
	runner := checklist.NewRunner(func(r domain.CheckResult) {
		s.logger.Debug("check failed",
			zap.String("category", r.Category),
			zap.String("check", r.Name),
			zap.String("message", r.Message),
		)
	})
	probe := checklist.NewProbe(fs)

	suites := []struct {
		category string
		register func(*checklist.Runner, *checklist.Probe, string)
	}{
		{domain.CheckFileStructure, registerFileStructure},
		{domain.CheckPackageManager, registerPackageManager},
		{domain.CheckSessionStartHook, registerSessionStartHook},
		{domain.CheckMCPConfiguration, registerMCPConfiguration},
		{domain.CheckClaims, registerClaims},
		{domain.CheckCustomCommands, registerCustomCommands},
		{domain.CheckVerifyScript, registerVerifyScript},
		{domain.CheckEnvironment, registerEnvironment},
		{domain.CheckDeployConfig, registerDeployConfig},
		{domain.CheckGit, s.registerGit(projectPath)},
	}

	for _, suite := range suites {
		if !cfg.IsEnabledCategory(suite.category) {
			s.logger.Debug("skipping category", zap.String("category", suite.category))
			continue
		}
		suite.register(runner, probe, suite.category)
	}

	report := &domain.ChecklistReport{
		Project: projectPath,
		Results: runner.Results(),
		Summary: runner.Summary(),
	}
	if s.git != nil {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.Commit = hash
		}
	}
	return report
}

func registerFileStructure(r *checklist.Runner, p *checklist.Probe, cat string) {
	for _, path := range []string{
		"CLAUDE.md",
		".mcp.json",
		".claude/settings.json",
		"netlify.toml",
		"scripts/setup.sh",
		"docs/CLAIMS.md",
		"docs/TROUBLESHOOTING.md",
		"scripts/verify-setup.ts",
	} {
		r.Register(cat, path+" exists", p.FileExists(path))
	}
}

func registerPackageManager(r *checklist.Runner, p *checklist.Probe, cat string) {
	r.Register(cat, "package.json exists", p.FileExists("package.json"))

	r.Register(cat, "package.json uses bun in scripts", func() (checklist.Outcome, error) {
		pkg, err := p.ReadJSONObject("package.json")
		if err != nil {
			return checklist.Outcome{}, err
		}
		scripts := pkg["scripts"]
		if scripts == nil {
			scripts = map[string]any{}
		}
		encoded, err := json.Marshal(scripts)
		if err != nil {
			return checklist.Outcome{}, err
		}
		return checklist.PassIf(strings.Contains(string(encoded), "bun"), "bun found in scripts"), nil
	})

	r.Register(cat, "Node.js version >=20 required", func() (checklist.Outcome, error) {
		pkg, err := p.ReadJSONObject("package.json")
		if err != nil {
			return checklist.Outcome{}, err
		}
		node := checklist.String(checklist.Object(pkg, "engines"), "node")
		return checklist.PassIf(strings.Contains(node, "20"), "engines.node: "+node), nil
	})
}

func registerSessionStartHook(r *checklist.Runner, p *checklist.Probe, cat string) {
	r.Register(cat, "settings.json has SessionStart hook", func() (checklist.Outcome, error) {
		const path = ".claude/settings.json"
		if !p.Exists(path) {
			return checklist.Fail(), nil
		}
		settings, err := p.ReadJSONObject(path)
		if err != nil {
			return checklist.Outcome{}, err
		}
		hook := checklist.Object(settings, "hooks")["SessionStart"]
		return checklist.PassIf(truthy(hook), "SessionStart hook configured"), nil
	})

	r.Register(cat, "setup.sh references bun", p.Contains("scripts/setup.sh", "bun", "bun found in setup.sh"))
	r.Register(cat, "setup.sh has fallback logic", p.Contains("scripts/setup.sh", "fallback", "fallback logic found"))
	r.Register(cat, "setup.sh has retry logic", p.Contains("scripts/setup.sh", "max_retries", "retry logic found"))
}

var (
	oauthServers = []string{"github", "figma", "netlify", "notion"}
	openServers  = []string{"exa-search", "aws-docs", "huggingface"}
)

func registerMCPConfiguration(r *checklist.Runner, p *checklist.Probe, cat string) {
	const path = ".mcp.json"

	servers := func() (map[string]any, error) {
		cfg, err := p.ReadJSONObject(path)
		if err != nil {
			return nil, err
		}
		return checklist.Object(cfg, "mcpServers"), nil
	}

	r.Register(cat, ".mcp.json is valid JSON", p.JSONValid(path))

	r.Register(cat, "Has HTTP MCP servers", func() (checklist.Outcome, error) {
		s, err := servers()
		if err != nil {
			return checklist.Outcome{}, err
		}
		names := sortedKeys(s)
		return checklist.PassIf(len(names) > 0,
			fmt.Sprintf("%d servers: %s", len(names), strings.Join(names, ", "))), nil
	})

	r.Register(cat, "No stdio MCP servers", func() (checklist.Outcome, error) {
		s, err := servers()
		if err != nil {
			return checklist.Outcome{}, err
		}
		for _, raw := range s {
			server, _ := raw.(map[string]any)
			if checklist.String(server, "type") == "stdio" || truthy(server["command"]) {
				return checklist.Fail(), nil
			}
		}
		return checklist.Pass("No stdio servers (good)"), nil
	})

	r.Register(cat, "OAuth servers present", requireServers(servers, oauthServers, "OAuth"))
	r.Register(cat, "Open servers present", requireServers(servers, openServers, "Open"))
}

func requireServers(servers func() (map[string]any, error), want []string, label string) checklist.CheckFunc {
	return func() (checklist.Outcome, error) {
		s, err := servers()
		if err != nil {
			return checklist.Outcome{}, err
		}
		var found []string
		for _, name := range want {
			if _, ok := s[name]; ok {
				found = append(found, name)
			}
		}
		return checklist.PassIf(len(found) == len(want), label+": "+strings.Join(found, ", ")), nil
	}
}

func registerClaims(r *checklist.Runner, p *checklist.Probe, cat string) {
	r.Register(cat, "CLAUDE.md has CRITICAL CLAIMS section", p.Contains("CLAUDE.md", "CRITICAL CLAIMS", "CRITICAL CLAIMS found"))
	for _, claim := range []string{"NO_LOCALHOST", "HTTP_MCP_ONLY", "SESSION_EPHEMERAL", "GIT_IS_PERSISTENCE"} {
		r.Register(cat, claim+" claim exists", p.Contains("CLAUDE.md", claim, ""))
	}
	r.Register(cat, "docs/CLAIMS.md has detailed claims", p.Contains("docs/CLAIMS.md", "Claim ID", "Detailed claims found"))
}

func registerCustomCommands(r *checklist.Runner, p *checklist.Probe, cat string) {
	for _, name := range []string{"init-project", "preview", "check-env", "verify", "test-template"} {
		r.Register(cat, "/"+name+" exists", p.FileExists(".claude/commands/"+name+".md"))
	}
}

func registerVerifyScript(r *checklist.Runner, p *checklist.Probe, cat string) {
	const path = "scripts/verify-setup.ts"
	r.Register(cat, "verify-setup.ts uses bun shebang", p.HasPrefix(path, "#!/usr/bin/env bun", "bun shebang found"))
	r.Register(cat, "verify-setup.ts has test cases documentation", p.Contains(path, "TEST CASES CHECKLIST", "Test cases documented"))
}

func registerEnvironment(r *checklist.Runner, p *checklist.Probe, cat string) {
	r.Register(cat, ".env.example exists", p.FileExists(".env.example"))
	r.Register(cat, ".env.example has NETLIFY_SITE_ID", p.Contains(".env.example", "NETLIFY_SITE_ID", ""))
	r.Register(cat, "README.md has Requirements section", p.Contains("README.md", "## Requirements", "Requirements section found"))
	r.Register(cat, "README.md has Given/When/Then examples", p.Contains("README.md", "Given/When/Then", "BDD examples found"))
}

func registerDeployConfig(r *checklist.Runner, p *checklist.Probe, cat string) {
	const path = "netlify.toml"
	r.Register(cat, "netlify.toml is valid TOML", p.TOMLValid(path))
	r.Register(cat, "netlify.toml has [build] section", func() (checklist.Outcome, error) {
		doc, err := p.ReadTOML(path)
		if err != nil {
			return checklist.Outcome{}, err
		}
		build := checklist.Object(doc, "build")
		if build == nil {
			return checklist.Fail(), nil
		}
		if publish := checklist.String(build, "publish"); publish != "" {
			return checklist.Pass("publish: " + publish), nil
		}
		return checklist.Pass("build section found"), nil
	})
}

func (s *ChecklistService) registerGit(projectPath string) func(*checklist.Runner, *checklist.Probe, string) {
	return func(r *checklist.Runner, _ *checklist.Probe, cat string) {
		r.Register(cat, "Project is a git repository", func() (checklist.Outcome, error) {
			return checklist.Bool(s.git.IsGitRepo(projectPath)), nil
		})
		r.Register(cat, "HEAD has a commit", func() (checklist.Outcome, error) {
			hash, err := s.git.CommitHash(projectPath)
			if err != nil {
				return checklist.Outcome{}, err
			}
			return checklist.Pass("HEAD at " + shortHash(hash)), nil
		})
		r.Register(cat, "Remote configured", func() (checklist.Outcome, error) {
			remotes, err := s.git.Remotes(projectPath)
			if err != nil {
				return checklist.Outcome{}, err
			}
			return checklist.PassIf(len(remotes) > 0, "remotes: "+strings.Join(remotes, ", ")), nil
		})
	}
}

// truthy mirrors JSON truthiness: absent, null, false, 0 and "" are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
