package prompt

import (
	"log/slog"
	"path/filepath"

	"hgline/pkg/config"
	"hgline/pkg/hg"
	"hgline/pkg/label"
	"hgline/pkg/ui/styles"

	"github.com/bmatcuk/doublestar/v4"
)

// HgBranchModule is the module name used for configuration and logging.
const HgBranchModule = "hg_branch"

// Context carries what a module needs from the host for one render.
// Nil collaborators fall back to package defaults.
type Context struct {
	CurrentDir string
	Logger     *slog.Logger
	Locator    *hg.Locator
	Resolver   *hg.Resolver
}

func (c Context) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// HgBranch builds the hg_branch module for ctx.CurrentDir. It reports false
// when the module should not be shown at all.
func HgBranch(ctx Context, cfg config.HgBranchConfig) (*Module, bool) {
	logger := ctx.logger().With(slog.String("module", HgBranchModule))

	if cfg.Disabled {
		return nil, false
	}
	if ignored(ctx.CurrentDir, cfg.IgnorePaths, logger) {
		logger.Debug("directory ignored", slog.String("dir", ctx.CurrentDir))
		return nil, false
	}

	locator := ctx.Locator
	if locator == nil {
		locator = LocatorFor(cfg, logger)
	}
	repoDir, ok := locator.Locate(ctx.CurrentDir)
	if !ok {
		return nil, false
	}

	resolver := ctx.Resolver
	if resolver == nil {
		resolver = hg.NewResolver()
	}
	name, source, found := resolver.Lookup(repoDir)
	logger.Debug("resolved label",
		slog.String("repo", repoDir),
		slog.String("source", source),
		slog.Bool("found", found))

	style, err := styles.Parse(cfg.Style)
	if err != nil {
		logger.Warn("invalid style, rendering unstyled", slog.String("style", cfg.Style), slog.Any("error", err))
	}

	policy := label.NewPolicy(cfg.TruncationLength, cfg.TruncationSymbol, logger)

	module := NewModule(HgBranchModule, style)
	module.Prefix = "on "
	module.AddSegment("symbol", cfg.Symbol)
	module.AddSegment("name", label.Truncate(name, policy))

	return module, true
}

// LocatorFor returns a locator using the configured ascent policy. Unknown
// policies are logged and fall back to hg.AbortOnError.
func LocatorFor(cfg config.HgBranchConfig, logger *slog.Logger) *hg.Locator {
	policy, err := hg.ParseAscentPolicy(cfg.AscentPolicy)
	if err != nil {
		logger.Warn("invalid ascent policy, using abort", slog.Any("error", err))
	}
	return hg.NewLocator(policy)
}

func ignored(dir string, patterns []string, logger *slog.Logger) bool {
	if len(patterns) == 0 || dir == "" {
		return false
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	abs = filepath.ToSlash(abs)
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			logger.Warn("invalid ignore pattern", slog.String("pattern", pattern))
			continue
		}
		if match, _ := doublestar.Match(pattern, abs); match {
			return true
		}
	}
	return false
}
