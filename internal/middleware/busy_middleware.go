package middleware

import (
	"context"
	"strings"
	"sync"

	"github.com/fadilmartias/hiring-dashboard/internal/metrics"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	log "github.com/sirupsen/logrus"
)

const HeaderClientID = "X-Client-ID"

// ClientKey identifies the caller: the X-Client-ID header when present,
// otherwise the remote IP.
func ClientKey(c *fiber.Ctx) string {
	if id := strings.TrimSpace(c.Get(HeaderClientID)); id != "" {
		return utils.CopyString(id)
	}
	return c.IP()
}

// Locker marks keys as in flight. TryLock returns ok=false when key is
// already held; release must be called exactly once when ok is true.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(), ok bool, err error)
}

// MemoryLocker keeps in-flight keys in a mutex-guarded set.
type MemoryLocker struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{inFlight: make(map[string]struct{})}
}

func (l *MemoryLocker) TryLock(_ context.Context, key string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.inFlight[key]; busy {
		return nil, false, nil
	}
	l.inFlight[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.inFlight, key)
			l.mu.Unlock()
		})
	}, true, nil
}

func (l *MemoryLocker) Busy(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, busy := l.inFlight[key]
	return busy
}

// BusyGate allows one in-flight submit per action and client.
type BusyGate struct {
	locker Locker
}

func NewBusyGate() *BusyGate {
	return NewBusyGateWithLocker(NewMemoryLocker())
}

func NewBusyGateWithLocker(locker Locker) *BusyGate {
	return &BusyGate{locker: locker}
}

// Guard rejects a request with 409 while the same client has another request
// for action in flight. If the locker itself fails the request is let through.
func (g *BusyGate) Guard(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		client := ClientKey(c)
		release, ok, err := g.locker.TryLock(c.UserContext(), action+":"+client)
		if err != nil {
			log.WithError(err).WithField("action", action).Warn("busy gate unavailable, allowing request")
			return c.Next()
		}
		if !ok {
			metrics.BusyRejections.WithLabelValues(action).Inc()
			log.WithField("action", action).WithField("client", client).Warn("rejected concurrent submit")
			return util.HandleError(c, util.ErrBusy, util.ErrBusy.Error())
		}
		defer release()
		return c.Next()
	}
}
