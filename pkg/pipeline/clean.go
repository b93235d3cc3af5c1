package pipeline

import (
	"slices"

	"github.com/plotfence/plotfence/pkg/artifacts"
	"github.com/plotfence/plotfence/pkg/document"
	"github.com/plotfence/plotfence/pkg/figure"
)

// Clean removes every output directory the document's plot blocks
// reference, including per-block directory overrides. Blocks that do
// not resolve to a toolkit are ignored. Returns the removed directories
// in sorted order.
func (p *Processor) Clean(doc *document.Document) ([]string, error) {
	seen := make(map[string]bool)
	for _, block := range doc.Blocks() {
		if dir, ok := figure.Directory(p.cfg, block); ok {
			seen[dir] = true
		}
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)

	for _, dir := range dirs {
		if err := artifacts.Remove(dir); err != nil {
			return nil, err
		}
		p.logger.Info("removed output directory", "dir", dir)
	}
	return dirs, nil
}
