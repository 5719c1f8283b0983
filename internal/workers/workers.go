package workers

type Workers struct {
	workers []Worker
}

// New bundles the given workers into one aggregate.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
