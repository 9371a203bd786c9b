// Package rasterize converts rendered HTML documents into PDF bytes via a
// headless Chrome driven by rod.
package rasterize

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// A4 page geometry in inches, with 20mm top/bottom and 15mm side margins.
const (
	paperWidthIn   = 8.27
	paperHeightIn  = 11.69
	marginTopIn    = 0.787
	marginBottomIn = 0.787
	marginSideIn   = 0.591
)

// Config configures the rasterizer.
type Config struct {
	// MaxConcurrent caps simultaneous print jobs. Chrome tabs are heavy;
	// default is 2.
	MaxConcurrent int

	// Timeout bounds a single rasterization. Default: 60s.
	Timeout time.Duration

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 2
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Renderer owns a headless Chrome process, launched on first use.
type Renderer struct {
	cfg Config
	sem chan struct{}

	mu      sync.Mutex
	browser *rod.Browser
	lnch    *launcher.Launcher
	closed  bool
}

func New(cfg Config) *Renderer {
	cfg.defaults()
	return &Renderer{
		cfg: cfg,
		sem: make(chan struct{}, cfg.MaxConcurrent),
	}
}

// connect launches Chrome if it is not already running.
func (r *Renderer) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, fmt.Errorf("rasterize: renderer is closed")
	}
	if r.browser != nil {
		return r.browser, nil
	}

	lnch := launcher.New().Headless(true)
	u, err := lnch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnch.Kill()
		return nil, fmt.Errorf("connect chrome: %w", err)
	}

	r.lnch = lnch
	r.browser = browser
	r.cfg.Logger.Info("chrome started for pdf rasterization")
	return browser, nil
}

// PDF prints a complete standalone HTML document to PDF bytes. The call
// honors ctx: cancellation abandons the in-flight page.
func (r *Renderer) PDF(ctx context.Context, htmlDoc string) ([]byte, error) {
	select {
	case r.sem <- struct{}{}:
		defer func() { <-r.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	browser, err := r.connect()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	page = page.Context(ctx)
	defer page.Close()

	if err := page.SetDocumentContent(htmlDoc); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	// Give web fonts a chance to settle before printing.
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	printBackground := true
	width := paperWidthIn
	height := paperHeightIn
	top := marginTopIn
	bottom := marginBottomIn
	side := marginSideIn

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: printBackground,
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &top,
		MarginBottom:    &bottom,
		MarginLeft:      &side,
		MarginRight:     &side,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return pdf, nil
}

// Close shuts down Chrome. The renderer cannot be reused afterwards.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	if r.browser != nil {
		if err := r.browser.Close(); err != nil {
			r.cfg.Logger.Warn("browser close failed", "error", err)
		}
		r.browser = nil
	}
	if r.lnch != nil {
		r.lnch.Kill()
		r.lnch = nil
	}
}
