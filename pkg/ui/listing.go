package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dorc/pkg/style"
)

// ListDirectory renders the contents of dir as the post-navigation listing.
// Directories sort first; entry names are styled by kind when format allows.
// An unreadable directory yields an empty listing, never an error: the
// navigation itself already succeeded.
func ListDirectory(dir string, format Format) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, renderEntry(entry, format))
	}
	if len(names) == 0 {
		return ""
	}

	header := filepath.Clean(dir)
	if format == FormatTerminal {
		header = pterm.Bold.Sprint(header)
	}
	return header + "\n" + strings.Join(names, "  ")
}

// renderEntry styles one listing entry by kind
func renderEntry(entry os.DirEntry, format Format) string {
	name := entry.Name()
	if format != FormatTerminal {
		if entry.IsDir() {
			return name + "/"
		}
		return name
	}

	switch {
	case entry.IsDir():
		return style.DirStyle.Render(name + "/")
	case entry.Type()&os.ModeSymlink != 0:
		return style.SymlinkStyle.Render(name)
	case isExecutable(entry):
		return style.ExecutableStyle.Render(name)
	default:
		return style.NormalStyle.Render(name)
	}
}

func isExecutable(entry os.DirEntry) bool {
	info, err := entry.Info()
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}
