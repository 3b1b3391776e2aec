package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"treefocus/internal/eventbus"
	"treefocus/internal/tree"
)

// Options controls what a scan includes
type Options struct {
	MaxDepth   int // 0 means unlimited
	ShowHidden bool
	Ignore     []string
}

// DiscoveryService builds a tree from the filesystem
type DiscoveryService interface {
	Scan(ctx context.Context, root string, opts Options) (*tree.Tree, error)
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus eventbus.EventBus
	mu  sync.Mutex // one scan at a time
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &discoveryService{bus: bus}
}

// Scan walks root and returns a tree with root as its only top-level node.
// The root node starts expanded.
func (ds *discoveryService) Scan(ctx context.Context, root string, opts Options) (*tree.Tree, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	root = filepath.Clean(root)
	ds.bus.Publish(eventbus.ScanStartedEvent{Root: root})

	ignore := make(map[string]bool, len(opts.Ignore))
	for _, name := range opts.Ignore {
		ignore[name] = true
	}

	rootNode := &tree.Node{
		Name:     filepath.Base(root),
		Path:     root,
		IsDir:    true,
		Expanded: true,
	}
	dirs := map[string]*tree.Node{root: rootNode}
	count := 1

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if path == root {
				return err
			}
			log.Printf("Error walking path %s: %v", path, err)
			return nil
		}
		if path == root {
			return nil
		}

		name := d.Name()
		if ignore[name] || (!opts.ShowHidden && strings.HasPrefix(name, ".")) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		parent := dirs[filepath.Dir(path)]
		if parent == nil {
			return nil
		}

		node := &tree.Node{Name: name, Path: path, IsDir: d.IsDir()}
		parent.Add(node)
		count++

		if d.IsDir() {
			relPath, _ := filepath.Rel(root, path)
			depth := strings.Count(relPath, string(filepath.Separator)) + 1
			if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
				return fs.SkipDir
			}
			dirs[path] = node
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			ds.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Failed to scan %s", root),
				Err:     err,
			})
		}
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	rootNode.SortChildren()
	ds.bus.Publish(eventbus.ScanCompletedEvent{Root: root, Nodes: count})

	return tree.New(rootNode), nil
}
