package repository

import "sync"

// cacheGuard chặn cache-aside ghi lại bản show cũ sau khi đã invalidate.
//
// Reader lấy epoch trước khi query DB, chỉ Set khi chưa có invalidation nào
// xảy ra kể từ đó. Epoch bump và Delete cùng nằm trong write lock nên Set
// của reader hoặc chạy trước Delete, hoặc thấy epoch đã đổi.
type cacheGuard struct {
	mu    sync.RWMutex
	epoch uint64
}

func (g *cacheGuard) begin() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.epoch
}

// storeIfCurrent chạy store khi epoch chưa đổi, trả về false nếu bỏ qua
func (g *cacheGuard) storeIfCurrent(epoch uint64, store func()) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.epoch != epoch {
		return false
	}
	store()
	return true
}

func (g *cacheGuard) invalidate(evict func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.epoch++
	evict()
}
