package browser

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"orthoview/internal/logger"
)

// PanelWidth is the fixed width of the browser column.
const PanelWidth = 300

// Panel shows the filtered tree with Up and Home navigation. Selecting a
// file notifies OnFileChosen subscribers; directories only expand and
// collapse.
type Panel struct {
	source  *Source
	watcher *Watcher
	logger  logger.Logger

	tree      *widget.Tree
	rootLabel *widget.Label
	container fyne.CanvasObject

	listings map[string][]Entry

	onFileChosen func(path string)
	onRejected   func(path string, err error)
}

func NewPanel(source *Source, log logger.Logger) *Panel {
	if log == nil {
		log = logger.Nop{}
	}
	p := &Panel{
		source:   source,
		logger:   log,
		listings: make(map[string][]Entry),
	}
	p.createComponents()
	p.setupLayout()
	return p
}

func (p *Panel) createComponents() {
	p.tree = widget.NewTree(p.childUIDs, p.isBranch, p.createNode, p.updateNode)
	p.tree.Root = p.source.Root()
	p.tree.OnSelected = p.onSelected
	p.tree.OnBranchOpened = func(uid widget.TreeNodeID) {
		if p.watcher != nil {
			p.watcher.Watch(uid)
		}
	}
	p.tree.OnBranchClosed = func(uid widget.TreeNodeID) {
		if p.watcher != nil && uid != p.tree.Root {
			p.watcher.Unwatch(uid)
		}
	}

	p.rootLabel = widget.NewLabel(p.source.Root())
	p.rootLabel.Truncation = fyne.TextTruncateEllipsis
}

func (p *Panel) setupLayout() {
	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MoveUpIcon(), p.NavigateUp),
		widget.NewToolbarAction(theme.HomeIcon(), p.NavigateHome),
	)

	header := container.NewBorder(nil, nil, toolbar, nil, p.rootLabel)
	p.container = container.NewBorder(header, nil, nil, nil, p.tree)
}

func (p *Panel) GetContainer() fyne.CanvasObject {
	return p.container
}

// OnFileChosen subscribes to accepted file selections.
func (p *Panel) OnFileChosen(handler func(path string)) {
	p.onFileChosen = handler
}

// OnRejected subscribes to selections that failed validation.
func (p *Panel) OnRejected(handler func(path string, err error)) {
	p.onRejected = handler
}

// AttachWatcher refreshes listings when watched directories change.
func (p *Panel) AttachWatcher(w *Watcher) {
	p.watcher = w
	w.Watch(p.source.Root())
}

// Root returns the directory currently shown at the top of the tree.
func (p *Panel) Root() string {
	return p.source.Root()
}

func (p *Panel) NavigateUp() {
	if p.source.NavigateUp() {
		p.reroot()
	}
}

func (p *Panel) NavigateHome() {
	p.source.NavigateHome()
	p.reroot()
}

// Select routes a path as if it had been picked in the tree. Directories
// are ignored. Files are validated before subscribers see them.
func (p *Panel) Select(path string) {
	if p.source.IsDir(path) {
		p.logger.Debug("FileBrowser", "directory selected", map[string]interface{}{"path": path})
		return
	}

	if err := p.source.Validate(path); err != nil {
		p.logger.Warning("FileBrowser", "selection rejected", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		if p.onRejected != nil {
			p.onRejected(path, err)
		}
		return
	}

	if p.onFileChosen != nil {
		p.onFileChosen(path)
	}
}

// Invalidate drops the cached listing of dir and redraws the tree.
func (p *Panel) Invalidate(dir string) {
	delete(p.listings, dir)
	p.tree.Refresh()
}

func (p *Panel) reroot() {
	root := p.source.Root()
	p.listings = make(map[string][]Entry)
	if p.watcher != nil {
		p.watcher.UnwatchAll()
		p.watcher.Watch(root)
	}

	p.tree.UnselectAll()
	p.tree.CloseAllBranches()
	p.tree.Root = root
	p.tree.Refresh()
	p.rootLabel.SetText(root)
}

func (p *Panel) onSelected(uid widget.TreeNodeID) {
	if p.isBranch(uid) {
		// tapping a folder toggles it; unselect so the next tap toggles again
		p.tree.ToggleBranch(uid)
		p.tree.Unselect(uid)
		return
	}
	p.Select(uid)
}

func (p *Panel) listing(dir string) []Entry {
	if entries, ok := p.listings[dir]; ok {
		return entries
	}
	entries, err := p.source.Children(dir)
	if err != nil {
		p.logger.Debug("FileBrowser", "listing failed", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
	}
	p.listings[dir] = entries
	return entries
}

func (p *Panel) childUIDs(uid widget.TreeNodeID) []widget.TreeNodeID {
	entries := p.listing(uid)
	ids := make([]widget.TreeNodeID, len(entries))
	for i, e := range entries {
		ids[i] = e.Path
	}
	return ids
}

func (p *Panel) isBranch(uid widget.TreeNodeID) bool {
	if uid == p.tree.Root {
		return true
	}
	for _, e := range p.listing(filepath.Dir(uid)) {
		if e.Path == uid {
			return e.IsDir
		}
	}
	return p.source.IsDir(uid)
}

func (p *Panel) createNode(branch bool) fyne.CanvasObject {
	return container.NewHBox(widget.NewIcon(nil), widget.NewLabel(""))
}

func (p *Panel) updateNode(uid widget.TreeNodeID, branch bool, node fyne.CanvasObject) {
	box := node.(*fyne.Container)
	icon := box.Objects[0].(*widget.Icon)
	label := box.Objects[1].(*widget.Label)

	if branch {
		icon.SetResource(theme.FolderIcon())
	} else {
		icon.SetResource(theme.FileImageIcon())
	}
	label.SetText(filepath.Base(uid))
}
