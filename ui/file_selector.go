package ui

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"aurora-gff/ds"
	"aurora-gff/gff"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	FileSelector struct {
		cwd     string
		entries []dirEntry
		cursor  int
		status  string
		history *ds.Stack[string]
	}
	dirEntry struct {
		name  string
		isDir bool
	}
)

func CreateFileSelector() FileSelector {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateFileSelector get current working directory error")
		log.Panic(err)
	}
	return FileSelector{
		cwd:     cwd,
		entries: ReadDirectory(cwd),
		history: ds.NewStack[string](),
	}
}

func ReadDirectory(path string) []dirEntry {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	entries := lo.Map(
		files,
		func(t fs.DirEntry, _ int) dirEntry {
			return dirEntry{name: t.Name(), isDir: t.IsDir()}
		},
	)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})
	return entries
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case "backspace":
		if s.history.Len() > 0 {
			s.enterDirectory(s.history.Pop())
		} else {
			s.enterDirectory(filepath.Dir(s.cwd))
		}
		return s, nil
	case "enter":
		if len(s.entries) == 0 {
			return s, nil
		}
		entry := s.entries[s.cursor]
		path := filepath.Join(s.cwd, entry.name)
		if entry.isDir {
			s.history.Push(s.cwd)
			s.enterDirectory(path)
		} else {
			s.status = convert(path)
		}
		return s, nil
	}
	return s, nil
}

func (s *FileSelector) enterDirectory(path string) {
	s.cwd = path
	s.entries = ReadDirectory(path)
	s.cursor = 0
	s.status = ""
}

func convert(path string) string {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return "Error happened reading file at: " + path
	}
	switch {
	case gff.IsGFFFile(fileBytes):
		resultBytes, err := gff.DecodeGFF(fileBytes, false)
		if err != nil {
			return "Error happened decoding GFF to JSON: " + err.Error()
		}
		to := path + ".json"
		if err := os.WriteFile(to, resultBytes, 0644); err != nil {
			return "Error happened writing to file at: " + to
		}
		return "Done converting to: " + to
	case strings.HasSuffix(path, ".json"):
		resultBytes, err := gff.EncodeJSON(fileBytes)
		if err != nil {
			return "Error happened encoding JSON to GFF: " + err.Error()
		}
		to := strings.TrimSuffix(path, ".json") + ".gff"
		if err := os.WriteFile(to, resultBytes, 0644); err != nil {
			return "Error happened writing to file at: " + to
		}
		return "Done converting to: " + to
	}
	return "Neither a GFF file nor a JSON file: " + path
}

func (s FileSelector) View() string {
	output := "AURORA GFF\n\n"
	output += "Current directory: " + s.cwd + "\n"
	output += "Pick a GFF or JSON file to convert; q quits, backspace goes up\n\n"

	for index, entry := range s.entries {
		marker := "  "
		if index == s.cursor {
			marker = "> "
		}
		name := entry.name
		if entry.isDir {
			name += "/"
		}
		output += marker + name + "\n"
	}
	if s.status != "" {
		output += "\n" + s.status + "\n"
	}
	return output
}
