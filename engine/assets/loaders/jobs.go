package loaders

import (
	"errors"
	"runtime"
	"sync"

	"github.com/spaghettifunk/ace/engine/core"
)

var (
	ErrNoWorkers           = errors.New("attempting to create worker pool with less than 1 worker")
	ErrNegativeChannelSize = errors.New("attempting to create worker pool with a negative channel size")
)

// Job is one unit of work. OnFailure or OnComplete runs on the worker after Run.
type Job struct {
	Run        func() error
	OnFailure  func(err error)
	OnComplete func()
}

// JobPool runs submitted jobs on a fixed number of goroutines.
type JobPool struct {
	numWorkers int
	jobQueue   chan Job
	wg         sync.WaitGroup
}

func NewJobPool(numWorkers int, channelSize int) (*JobPool, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}
	jp := &JobPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan Job, channelSize),
	}
	jp.start()
	return jp, nil
}

func (jp *JobPool) start() {
	for i := 0; i < jp.numWorkers; i++ {
		jp.wg.Add(1)
		go func() {
			defer jp.wg.Done()
			for job := range jp.jobQueue {
				if err := job.Run(); err != nil {
					if job.OnFailure != nil {
						job.OnFailure(err)
					}
					continue
				}
				if job.OnComplete != nil {
					job.OnComplete()
				}
			}
		}()
	}
}

// Submit queues a job, blocking while the queue is full.
func (jp *JobPool) Submit(job Job) {
	jp.jobQueue <- job
}

// Shutdown waits for queued jobs to finish. The pool cannot be reused.
func (jp *JobPool) Shutdown() {
	close(jp.jobQueue)
	jp.wg.Wait()
}

// LoadImages decodes every path concurrently. Results keep the order of
// paths; on failure the error of the first failing path is returned.
func LoadImages(paths ...string) ([]*Image, error) {
	images := make([]*Image, len(paths))
	if len(paths) == 0 {
		return images, nil
	}
	errs := make([]error, len(paths))

	pool, err := NewJobPool(min(len(paths), runtime.NumCPU()), len(paths))
	if err != nil {
		return nil, err
	}
	for i, path := range paths {
		pool.Submit(Job{
			Run: func() error {
				img, err := LoadImage(path)
				images[i] = img
				return err
			},
			OnFailure: func(err error) {
				errs[i] = err
			},
		})
	}
	pool.Shutdown()

	for i, err := range errs {
		if err != nil {
			core.LogError("failed to load image", "path", paths[i], "err", err)
			return nil, err
		}
	}
	return images, nil
}
