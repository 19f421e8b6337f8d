package system

import "sync"

// RowPool предоставляет повторно используемые строки таблицы, отдельный
// sync.Pool на каждую ширину строки, чтобы не выделять память на каждый кадр.
type RowPool struct {
	pools map[int]*sync.Pool
	mu    sync.RWMutex
}

func NewRowPool() *RowPool {
	return &RowPool{pools: make(map[int]*sync.Pool)}
}

// Get возвращает строку ровно из n ячеек. Содержимое не очищается.
func (p *RowPool) Get(n int) []string {
	p.mu.RLock()
	pool, exists := p.pools[n]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		// Double check
		pool, exists = p.pools[n]
		if !exists {
			pool = &sync.Pool{
				New: func() any {
					row := make([]string, n)
					return &row
				},
			}
			p.pools[n] = pool
		}
		p.mu.Unlock()
	}

	return *pool.Get().(*[]string)
}

// Put возвращает строку в пул ее ширины.
func (p *RowPool) Put(row []string) {
	if row == nil {
		return
	}
	p.mu.RLock()
	pool, exists := p.pools[len(row)]
	p.mu.RUnlock()

	if exists {
		pool.Put(&row)
	}
}
