package crawler

// Frontier is the FIFO queue of URLs awaiting a visit, fused with the set
// of every URL ever enqueued. Insertion order is visit order, which gives
// breadth-first traversal. The crawl loop is single-threaded, so the
// frontier needs no locking.
type Frontier struct {
	queue []string
	seen  map[string]struct{}
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: make(map[string]struct{}),
	}
}

// Push enqueues a URL unless it has ever been enqueued before.
// Returns true when the URL was accepted.
func (f *Frontier) Push(url string) bool {
	if _, ok := f.seen[url]; ok {
		return false
	}
	f.seen[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the earliest-inserted pending URL.
// Returns false when the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of pending URLs.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Seen reports whether a URL was ever enqueued, pending or already popped.
func (f *Frontier) Seen(url string) bool {
	_, ok := f.seen[url]
	return ok
}

// SeenCount returns the number of distinct URLs ever enqueued.
func (f *Frontier) SeenCount() int {
	return len(f.seen)
}
