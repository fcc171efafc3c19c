package webapi

import (
	"net/http"
	"os"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/pkg/clog"
	"github.com/pkg/errors"
)

// LogController changes the level and output of a logging context at
// runtime.
type LogController struct {
	mu      sync.Mutex
	logger  *clog.ContextLogger
	outputs map[string]string
}

type LoggingState struct {
	Context   string `json:"context"`
	LogLevel  string `json:"log_level"`
	LogOutput string `json:"log_output"`
}

func NewLogController(logger *clog.ContextLogger) *LogController {
	return &LogController{
		logger:  logger,
		outputs: make(map[string]string),
	}
}

func (c *LogController) ShowCurrentLogging(ctx echo.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ctx.JSON(http.StatusOK, c.state(contextParam(ctx.QueryParam("context"))))
}

func (c *LogController) SetLogging(ctx echo.Context) error {
	var req struct {
		Context   string `json:"context"`
		LogLevel  string `json:"log_level"`
		LogOutput string `json:"log_output"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	loggingCtx := contextParam(req.Context)

	c.mu.Lock()
	defer c.mu.Unlock()

	if req.LogLevel != "" {
		if err := c.logger.SetLevelFromString(loggingCtx, req.LogLevel); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.Wrapf(err, "invalid log level %s", req.LogLevel).Error())
		}
	}

	if req.LogOutput != "" {
		if err := c.setOutput(loggingCtx, req.LogOutput); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return ctx.JSON(http.StatusOK, c.state(loggingCtx))
}

// setOutput switches the context to stdout, stderr or a file. A context
// without its own logger gets one.
func (c *LogController) setOutput(loggingCtx, output string) error {
	var w *os.File
	switch output {
	case "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrapf(err, "failed to open log output %s", output)
		}
		w = f
	}

	if err := c.logger.SetOutput(loggingCtx, w); err != nil {
		level := c.logger.Level(loggingCtx)
		c.logger.AddLoggingContext(loggingCtx, w)
		c.logger.SetLevel(loggingCtx, level)
	}

	c.outputs[loggingCtx] = output
	return nil
}

func (c *LogController) state(loggingCtx string) LoggingState {
	output, ok := c.outputs[loggingCtx]
	if !ok {
		output = "stdout"
	}

	return LoggingState{
		Context:   loggingCtx,
		LogLevel:  c.logger.Level(loggingCtx).String(),
		LogOutput: output,
	}
}

func contextParam(s string) string {
	if s == "" {
		return clog.GlobalLoggerCtx
	}

	return s
}
