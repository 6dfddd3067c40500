package telemetry

import (
	"bytes"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
)

var _ progrock.Writer = (*Console)(nil)

// Console is a progrock.Writer that forwards vertex log lines to a ports.Logger.
// Lines written to a vertex's stderr are logged as warnings, the rest as info.
type Console struct {
	logger ports.Logger

	mu      sync.Mutex
	names   map[string]string
	pending map[logKey]*bytes.Buffer
	order   []logKey
}

type logKey struct {
	vertex string
	stream progrock.LogStream
}

// NewConsole creates a Console logging through logger.
func NewConsole(logger ports.Logger) *Console {
	return &Console{
		logger:  logger,
		names:   make(map[string]string),
		pending: make(map[logKey]*bytes.Buffer),
	}
}

// WriteStatus logs every complete line carried by the update.
func (c *Console) WriteStatus(update *progrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range update.Vertexes {
		c.names[v.Id] = v.Name
	}

	for _, l := range update.Logs {
		key := logKey{vertex: l.Vertex, stream: l.Stream}
		buf, ok := c.pending[key]
		if !ok {
			buf = &bytes.Buffer{}
			c.pending[key] = buf
			c.order = append(c.order, key)
		}
		buf.Write(l.Data)

		for {
			line, err := buf.ReadString('\n')
			if err != nil {
				// Keep the partial line until the rest arrives.
				rest := []byte(line)
				buf.Reset()
				buf.Write(rest)
				break
			}
			c.emit(key, strings.TrimSuffix(line, "\n"))
		}
	}
	return nil
}

// Close logs any unterminated lines.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.order {
		if buf := c.pending[key]; buf.Len() > 0 {
			c.emit(key, buf.String())
			buf.Reset()
		}
	}
	return nil
}

func (c *Console) emit(key logKey, line string) {
	if line == "" {
		return
	}
	msg := stripLevel(line)
	if name := c.names[key.vertex]; name != "" {
		msg = name + ": " + msg
	}
	if key.stream == progrock.LogStream_STDERR {
		c.logger.Warn(msg)
		return
	}
	c.logger.Info(msg)
}

// stripLevel removes the level prefix written by Vertex.Log.
func stripLevel(line string) string {
	for _, level := range []domain.LogLevel{
		domain.LogLevelDebug,
		domain.LogLevelInfo,
		domain.LogLevelWarn,
		domain.LogLevelError,
	} {
		if rest, ok := strings.CutPrefix(line, "["+level.String()+"] "); ok {
			return rest
		}
	}
	return line
}
