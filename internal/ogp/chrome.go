package ogp

import (
	"context"
	"fmt"
	"html"
	"image"
	"image/color"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-tmlsite/internal/process"
)

// DefaultChromeTimeout bounds one screenshot.
const DefaultChromeTimeout = 30 * time.Second

// Chrome draws by laying out absolutely positioned HTML in headless Chrome
// and taking a screenshot. The browser starts on first use and is shared
// by all surfaces until Close.
type Chrome struct {
	FontFamily string
	Timeout    time.Duration

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewChrome returns a Chrome backend using fontFamily for text.
func NewChrome(fontFamily string) *Chrome {
	return &Chrome{FontFamily: fontFamily, Timeout: DefaultChromeTimeout}
}

func (c *Chrome) ensureBrowser() (*rod.Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser != nil {
		return c.browser, nil
	}

	l := launcher.New()
	// Use a pre-installed browser in containers.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: launching browser: %v", ErrBackend, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		process.KillProcessGroup(l.PID())
		l.Kill()
		return nil, fmt.Errorf("%w: connecting to browser: %v", ErrBackend, err)
	}
	c.launcher = l
	c.browser = b
	return b, nil
}

// Close stops the browser and its child processes.
func (c *Chrome) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser == nil {
		return nil
	}
	err := c.browser.Close()
	process.KillProcessGroup(c.launcher.PID())
	c.launcher.Kill()
	c.browser = nil
	c.launcher = nil
	return err
}

// NewSurface implements Backend.
func (c *Chrome) NewSurface(w, h int) (Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas %dx%d", ErrBackend, w, h)
	}
	return &chromeSurface{backend: c, w: w, h: h}, nil
}

type chromeSurface struct {
	backend *Chrome
	w, h    int
	size    float64
	ops     []string
}

func (s *chromeSurface) FillRect(r image.Rectangle, c color.Color) error {
	s.ops = append(s.ops, fmt.Sprintf(
		`<div style="position:absolute;left:%dpx;top:%dpx;width:%dpx;height:%dpx;background:%s"></div>`,
		r.Min.X, r.Min.Y, r.Dx(), r.Dy(), cssColor(c)))
	return nil
}

func (s *chromeSurface) SetFont(size float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: invalid font size %v", ErrBackend, size)
	}
	s.size = size
	return nil
}

// DrawText anchors text at its baseline: a zero-height inline-block
// aligned to the baseline sits exactly on y.
func (s *chromeSurface) DrawText(x, y int, text string) error {
	if s.size == 0 {
		return fmt.Errorf("%w: no font selected", ErrBackend)
	}
	s.ops = append(s.ops, fmt.Sprintf(
		`<div style="position:absolute;left:%dpx;top:%dpx;font-size:%vpx;line-height:0;white-space:pre">%s<span style="display:inline-block;height:0"></span></div>`,
		x, y, s.size, html.EscapeString(text)))
	return nil
}

// Document returns the HTML page that Encode screenshots.
func (s *chromeSurface) Document() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html><html><head><meta charset="UTF-8"><style>html,body{margin:0;padding:0;overflow:hidden}body{position:relative;width:%dpx;height:%dpx;font-family:%s;color:#000}</style></head><body>`,
		s.w, s.h, cssFontFamily(s.backend.FontFamily))
	for _, op := range s.ops {
		b.WriteString(op)
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

func (s *chromeSurface) Encode(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	browser, err := s.backend.ensureBrowser()
	if err != nil {
		return err
	}

	timeout := s.backend.Timeout
	if timeout <= 0 {
		timeout = DefaultChromeTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("%w: creating page: %v", ErrBackend, err)
	}
	defer page.Close()
	page = page.Context(ctx).Timeout(timeout)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.w,
		Height:            s.h,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("%w: viewport: %v", ErrBackend, err)
	}
	if err := page.SetDocumentContent(s.Document()); err != nil {
		return fmt.Errorf("%w: loading canvas: %v", ErrBackend, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("%w: loading canvas: %v", ErrBackend, err)
	}

	data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("%w: screenshot: %v", ErrEncode, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", r>>8, g>>8, b>>8, float64(a)/0xffff)
}

func cssFontFamily(family string) string {
	if family == "" {
		return "sans-serif"
	}
	return fmt.Sprintf("%q, sans-serif", family)
}
