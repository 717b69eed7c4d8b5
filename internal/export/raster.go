package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// rasterScale is the device scale factor for screenshots; the preview
// is captured at 2x for crisp output in PDFs and PNGs.
const rasterScale = 2.0

// rasterViewportWidth is the CSS pixel width the preview is laid out at.
const rasterViewportWidth = 900

// ChromeRasterizer renders HTML documents in a headless browser and
// screenshots the resume node. Requires Chrome/Chromium to be installed
// on the system.
type ChromeRasterizer struct {
	Timeout time.Duration
}

// NewChromeRasterizer returns a rasterizer with a sensible default timeout.
func NewChromeRasterizer() *ChromeRasterizer {
	return &ChromeRasterizer{Timeout: 30 * time.Second}
}

// Rasterize loads the document and returns a PNG of the node matched by
// selector, captured at 2x scale.
func (c *ChromeRasterizer) Rasterize(ctx context.Context, document, selector string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := c.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(document))

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(rasterViewportWidth, 0, chromedp.EmulateScale(rasterScale)),
		chromedp.Navigate(dataURL),
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Screenshot(selector, &png, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	return png, nil
}
