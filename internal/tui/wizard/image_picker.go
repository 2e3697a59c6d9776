package wizard

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/devnexus/devnexus/internal/tui/theme"
)

// FileItem represents a file or directory in the image picker.
type FileItem struct {
	name  string
	path  string
	isDir bool
}

// Name returns the displayed name.
func (f *FileItem) Name() string { return f.name }

// IsDir reports whether the item is a directory.
func (f *FileItem) IsDir() bool { return f.isDir }

// Render returns the one-line representation of the item.
func (f *FileItem) Render(width int) string {
	icon := "🖼"
	if f.isDir {
		icon = "📁"
	}
	display := icon + " " + f.name
	if runes := []rune(display); width > 5 && len(runes) > width-2 {
		display = string(runes[:width-5]) + "..."
	}
	return display
}

// ImagePicker browses the filesystem for a single image. The listing is
// refreshed when files appear or disappear in the current directory.
type ImagePicker struct {
	slot        submit.MediaSlot
	currentPath string
	items       []*FileItem
	selectedIdx int
	offset      int
	width       int
	height      int
	err         string
	watcher     *DirWatcher
	finished    bool
}

// NewImagePicker creates a picker for slot rooted at startDir. An empty or
// missing startDir falls back to the working directory.
func NewImagePicker(slot submit.MediaSlot, startDir string) *ImagePicker {
	if info, err := os.Stat(startDir); startDir == "" || err != nil || !info.IsDir() {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		startDir = cwd
	}
	if abs, err := filepath.Abs(startDir); err == nil {
		startDir = abs
	}
	return &ImagePicker{
		slot:        slot,
		currentPath: startDir,
		width:       60,
		height:      12,
	}
}

// Slot returns the media slot being filled.
func (p *ImagePicker) Slot() submit.MediaSlot { return p.slot }

// Finished reports whether a pick or cancel has been issued.
func (p *ImagePicker) Finished() bool { return p.finished }

// Dir returns the directory being browsed.
func (p *ImagePicker) Dir() string { return p.currentPath }

// Items returns the current listing.
func (p *ImagePicker) Items() []*FileItem { return p.items }

// Selected returns the highlighted item, if any.
func (p *ImagePicker) Selected() *FileItem {
	if p.selectedIdx >= 0 && p.selectedIdx < len(p.items) {
		return p.items[p.selectedIdx]
	}
	return nil
}

// Init loads the start directory and begins watching it.
func (p *ImagePicker) Init() tea.Cmd {
	return p.navigate(p.currentPath)
}

// Close stops the directory watcher.
func (p *ImagePicker) Close() {
	if p.watcher != nil {
		if err := p.watcher.Stop(); err != nil {
			logger.Warn("Failed to stop directory watcher: %v", err)
		}
		p.watcher = nil
	}
}

// SetSize updates the dimensions for the picker.
func (p *ImagePicker) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.clampOffset()
}

func (p *ImagePicker) navigate(path string) tea.Cmd {
	if err := p.loadDirectory(path); err != nil {
		p.err = err.Error()
		return nil
	}
	p.err = ""
	p.Close()
	w, err := WatchDir(p.currentPath)
	if err != nil {
		logger.Warn("Watching %s failed: %v", p.currentPath, err)
		return nil
	}
	p.watcher = w
	return WaitForDirChange(w)
}

// loadDirectory lists subdirectories and image files of path.
func (p *ImagePicker) loadDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	p.items = p.items[:0]

	absPath, err := filepath.Abs(path)
	if err == nil && absPath != filepath.Dir(absPath) {
		p.items = append(p.items, &FileItem{name: "..", path: filepath.Dir(absPath), isDir: true})
	}

	var dirs, files []*FileItem
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		fullPath := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, &FileItem{name: entry.Name(), path: fullPath, isDir: true})
		} else if submit.IsImagePath(entry.Name()) {
			files = append(files, &FileItem{name: entry.Name(), path: fullPath})
		}
	}

	byName := func(items []*FileItem) func(i, j int) bool {
		return func(i, j int) bool { return strings.ToLower(items[i].name) < strings.ToLower(items[j].name) }
	}
	sort.Slice(dirs, byName(dirs))
	sort.Slice(files, byName(files))

	p.items = append(p.items, dirs...)
	p.items = append(p.items, files...)
	p.currentPath = absPath
	p.selectedIdx = 0
	p.offset = 0
	return nil
}

// refresh reloads the listing, keeping the highlighted entry when it survives.
func (p *ImagePicker) refresh() {
	var keep string
	if sel := p.Selected(); sel != nil {
		keep = sel.path
	}
	if err := p.loadDirectory(p.currentPath); err != nil {
		p.err = err.Error()
		return
	}
	for i, item := range p.items {
		if item.path == keep {
			p.selectedIdx = i
			break
		}
	}
	p.clampOffset()
}

// Update handles messages for the picker.
func (p *ImagePicker) Update(msg tea.Msg) tea.Cmd {
	if p.finished {
		return nil
	}
	switch msg := msg.(type) {
	case DirChangedMsg:
		if p.watcher == nil || msg.Dir != p.watcher.Dir() {
			return nil
		}
		p.refresh()
		return WaitForDirChange(p.watcher)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if p.selectedIdx > 0 {
				p.selectedIdx--
				p.clampOffset()
			}
		case "down", "j":
			if p.selectedIdx < len(p.items)-1 {
				p.selectedIdx++
				p.clampOffset()
			}
		case "enter":
			item := p.Selected()
			if item == nil {
				return nil
			}
			if item.isDir {
				return p.navigate(item.path)
			}
			slot := p.slot
			path := item.path
			p.finished = true
			p.Close()
			return func() tea.Msg {
				img, err := submit.LoadImage(path)
				return ImagePickedMsg{Slot: slot, Image: img, Err: err}
			}
		case "backspace":
			parent := filepath.Dir(p.currentPath)
			if parent != p.currentPath {
				return p.navigate(parent)
			}
		case "esc":
			slot := p.slot
			p.finished = true
			p.Close()
			return func() tea.Msg {
				return ImagePickedMsg{Slot: slot, Err: submit.ErrPickCanceled}
			}
		}
	}
	return nil
}

func (p *ImagePicker) listHeight() int {
	h := p.height - 4 // path, blank, blank, hints
	if h < 3 {
		h = 3
	}
	return h
}

func (p *ImagePicker) clampOffset() {
	h := p.listHeight()
	if p.selectedIdx < p.offset {
		p.offset = p.selectedIdx
	}
	if p.selectedIdx >= p.offset+h {
		p.offset = p.selectedIdx - h + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// View renders the picker.
func (p *ImagePicker) View() string {
	t := theme.Current()
	s := t.S()
	var b strings.Builder

	b.WriteString(s.ModalTitle.Render("Choose " + p.slot.String()))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(p.currentPath))
	b.WriteString("\n\n")

	hasImages := false
	for _, item := range p.items {
		if !item.isDir {
			hasImages = true
			break
		}
	}

	if p.err != "" {
		b.WriteString(s.Error.Render(p.err))
		b.WriteString("\n")
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Background(lipgloss.Color(t.BgSurface0)).
		Bold(true)

	end := p.offset + p.listHeight()
	if end > len(p.items) {
		end = len(p.items)
	}
	for i := p.offset; i < end; i++ {
		line := p.items[i].Render(p.width)
		if i == p.selectedIdx {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if !hasImages {
		b.WriteString(s.Muted.Italic(true).Render("No images in this directory"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHintBar(
		"↑↓/j/k", "navigate",
		"enter", "select",
		"backspace", "up",
		"esc", "cancel",
	))
	return b.String()
}

// ImagePickedMsg carries the outcome of a pick. Err is submit.ErrPickCanceled
// when the user backed out.
type ImagePickedMsg struct {
	Slot  submit.MediaSlot
	Image submit.Image
	Err   error
}
