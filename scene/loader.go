package scene

import (
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

const (
	loaderQueueSize   = 16
	loaderIdleTimeout = time.Second
)

type textureResult struct {
	target  *Texture
	decoded *Texture
	err     error
	onLoad  func(*Texture)
	onError func(error)
}

// TextureLoader reads and decodes textures on a worker pool. Decoded
// pixels are handed back through a channel and copied into the returned
// placeholder by Poll, so the scene graph is only touched by the goroutine
// that calls Poll.
type TextureLoader struct {
	pool    worker.DynamicWorkerPool
	results chan textureResult
	nextID  int
	pending int
}

func NewTextureLoader(workers int) *TextureLoader {
	return &TextureLoader{
		pool:    worker.NewDynamicWorkerPool(workers, loaderQueueSize, loaderIdleTimeout),
		results: make(chan textureResult, loaderQueueSize),
	}
}

// Load starts loading path and returns an empty texture that Poll fills in
// once decoding finishes. Either callback may be nil; they run inside Poll.
func (l *TextureLoader) Load(path string, onLoad func(*Texture), onError func(error)) *Texture {
	tex := &Texture{Name: path}

	l.nextID++
	l.pending++
	l.pool.SubmitTask(worker.Task{
		ID:      l.nextID,
		Payload: path,
		Do: func() (any, error) {
			decoded, err := LoadTexture(path)
			l.results <- textureResult{
				target:  tex,
				decoded: decoded,
				err:     err,
				onLoad:  onLoad,
				onError: onError,
			}
			return decoded, err
		},
	})
	return tex
}

// Poll applies every load that has completed since the last call and
// returns how many it applied. It never blocks.
func (l *TextureLoader) Poll() int {
	applied := 0
	for {
		select {
		case r := <-l.results:
			l.pending--
			applied++
			if r.err != nil {
				if r.onError != nil {
					r.onError(r.err)
				}
				continue
			}
			r.target.Width = r.decoded.Width
			r.target.Height = r.decoded.Height
			r.target.Pixels = r.decoded.Pixels
			if r.onLoad != nil {
				r.onLoad(r.target)
			}
		default:
			return applied
		}
	}
}

// Pending returns the number of loads not yet applied by Poll.
func (l *TextureLoader) Pending() int {
	return l.pending
}

// Close stops the worker pool. Loads still in flight are dropped.
func (l *TextureLoader) Close() {
	l.pool.Stop()
}
