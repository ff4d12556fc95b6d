package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline and cache events to a logger at debug level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that trace events through logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("trace")}
}

func (h *LogHooks) OnPlanStart(_ context.Context, panels int) {
	h.logger.Debug("plan start", "panels", panels)
}

func (h *LogHooks) OnPlanComplete(_ context.Context, panels, blocks int, d time.Duration, err error) {
	h.done("plan", d, err, "panels", panels, "blocks", blocks)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, panels int) {
	h.logger.Debug("layout start", "panels", panels)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, blocks int, d time.Duration, err error) {
	h.done("layout", d, err, "blocks", blocks)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", d, err, "formats", formats)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) done(stage string, d time.Duration, err error, keyvals ...any) {
	keyvals = append(keyvals, "duration", d)
	if err != nil {
		h.logger.Debug(stage+" failed", append(keyvals, "error", err)...)
		return
	}
	h.logger.Debug(stage+" done", keyvals...)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
