package conventions

import "strings"

// segments is a slash-separated path split into its non-empty components.
type segments []string

func splitPath(p string) segments {
	var out segments
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parent drops the last component.
func (s segments) parent() segments {
	if len(s) == 0 {
		return nil
	}
	return s[:len(s)-1]
}

func (s segments) last() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// dir joins the components with a trailing separator, or returns "" for an
// empty sequence.
func (s segments) dir() string {
	if len(s) == 0 {
		return ""
	}
	return strings.Join(s, "/") + "/"
}
