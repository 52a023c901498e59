package report

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/nutrabene/backoffice/pkg/logger"
)

const renderTimeout = 30 * time.Second

// dimensões A4 em polegadas (o protocolo do Chrome trabalha em polegadas)
const (
	paperWidthInches  = 210.0 / 25.4
	paperHeightInches = 297.0 / 25.4
	marginInches      = 10.0 / 25.4
)

// ChromedpRenderer converte HTML em PDF via Chrome DevTools Protocol
type ChromedpRenderer struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	logger      logger.Logger
}

// NewChromedpRenderer cria um novo renderizador de PDF. remoteURL aponta para
// uma instância remota de Chrome; vazio inicia um processo local headless.
func NewChromedpRenderer(remoteURL string, log logger.Logger) *ChromedpRenderer {
	r := &ChromedpRenderer{logger: log}

	if remoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), remoteURL)
		return r
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

// RenderPDF renderiza o HTML informado como um PDF A4
func (r *ChromedpRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	// o contexto do navegador precisa descender do alocador, então o prazo
	// é aplicado sobre ele e o cancelamento do chamador é propagado à mão
	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	browserCtx, timeoutCancel := context.WithTimeout(browserCtx, renderTimeout)
	defer timeoutCancel()

	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()

	start := time.Now()
	var pdfData []byte

	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginRight(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao renderizar PDF: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("PDF gerado está vazio")
	}

	r.logger.Debug("PDF renderizado", "bytes", len(pdfData), "duration", time.Since(start).String())
	return pdfData, nil
}

// Close libera o processo do Chrome
func (r *ChromedpRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}
