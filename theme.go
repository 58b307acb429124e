package mvcpath

import (
	"context"
	"sort"

	"github.com/rafbgarcia/mvcpath/internal/conventions"
)

const themeKey = "theme"

// ThemeName returns the theme configured in a Yii config file such as
// protected/config/main.php, or "" when none is set.
//
// A config may declare several themes, e.g. in conditional branches. Which
// one applies at runtime cannot be known statically; ThemeName then returns
// the lexically smallest and logs the candidates. Parse failures are logged
// and treated as no theme.
func (r *Resolver) ThemeName(ctx context.Context, configFile string) string {
	values, err := r.config.FindStringValues(ctx, slash(configFile), themeKey)
	if err != nil {
		r.log.Warn("can't read theme", "file", configFile, "error", err)
		return ""
	}
	if len(values) == 0 {
		return ""
	}

	themes := make([]string, 0, len(values))
	for theme := range values {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	if len(themes) > 1 {
		r.log.Warn("multiple themes declared", "file", configFile, "themes", themes, "using", themes[0])
	}
	return themes[0]
}

// ConfigFile returns the main config file of the project file belongs to.
func (r *Resolver) ConfigFile(file string) (string, bool) {
	webroot, ok := r.webroot(slash(file))
	if !ok {
		return "", false
	}
	return r.fs.Resolve(webroot, conventions.MainConfigPath)
}

// projectTheme looks up the theme of the project file belongs to. A missing
// project or config file means no theme.
func (r *Resolver) projectTheme(ctx context.Context, file string) string {
	config, ok := r.ConfigFile(file)
	if !ok {
		r.log.Debug("config file not found", "file", file)
		return ""
	}
	return r.ThemeName(ctx, config)
}
