package hal

import "sync"

// scanQueue buffers scancode bytes produced on one goroutine and consumed by
// the control loop. When full, the newest bytes are dropped.
type scanQueue struct {
	mu   sync.Mutex
	buf  []byte
	head int
	n    int
}

func newScanQueue(size int) *scanQueue {
	return &scanQueue{buf: make([]byte, size)}
}

// push appends bytes and reports how many were dropped.
func (q *scanQueue) push(b ...byte) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	dropped := 0
	for _, v := range b {
		if q.n == len(q.buf) {
			dropped++
			continue
		}
		q.buf[(q.head+q.n)%len(q.buf)] = v
		q.n++
	}
	return dropped
}

func (q *scanQueue) ReadByte() (byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.n == 0 {
		return 0, ErrNoData
	}
	v := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return v, nil
}

func (q *scanQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}
