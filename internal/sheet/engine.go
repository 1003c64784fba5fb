package sheet

import (
	"github.com/gradescan/omr-engine/internal/detection"
	"github.com/gradescan/omr-engine/internal/grading"
	"github.com/gradescan/omr-engine/internal/imaging"
	"github.com/gradescan/omr-engine/internal/logger"
)

// Engine is the real sheet processor: it runs the full recognition pipeline
// (preprocess, detect, group, extract, evaluate) on the image at the given
// path.
type Engine struct {
	cfg   Config
	cache *imaging.ImageCache
}

// NewEngine creates an Engine with the given configuration and a fresh image
// cache.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:   cfg,
		cache: imaging.NewImageCache(),
	}
}

// Process grades the sheet image at imagePath against key.
//
// The only hard failure is an unreadable or undecodable image, returned as an
// error matching imaging.ErrLoad. Stage-local anomalies — zero detected
// bubbles, degenerate rows — are absorbed into not-attempted outcomes,
// because a sheet legitimately may have blank answers.
//
// The image is evicted from the cache once graded; sheets are processed once
// and holding decoded photographs would grow memory without bound in batch
// runs.
func (e *Engine) Process(imagePath string, key grading.AnswerKey) (*grading.Result, error) {
	img, err := e.cache.Load(imagePath)
	if err != nil {
		return nil, err
	}
	defer e.cache.Evict(imagePath)

	bin := imaging.Preprocess(img, e.cfg.Preprocess)

	bubbles := detection.FindBubbles(bin, e.cfg.Filter)
	logger.Debugf("sheet %s: %d candidate bubbles", imagePath, len(bubbles))

	rows := detection.GroupRows(bubbles, e.cfg.RowTolerance)
	for i, row := range rows {
		if !row.Valid(e.cfg.OptionsPerQuestion) {
			logger.Debugf("sheet %s: question %d degenerate, expected %d bubbles, found %d",
				imagePath, i+1, e.cfg.OptionsPerQuestion, len(row.Bubbles))
		}
	}

	marked := grading.ExtractAnswers(bin, rows, e.cfg.OptionsPerQuestion, e.cfg.FillThreshold)

	info := &grading.ProcessingInfo{
		DetectionThreshold: e.cfg.FillThreshold,
		BubblesDetected:    len(bubbles),
		Method:             imaging.MethodAdaptiveThreshold,
	}
	return grading.Evaluate(marked, key, info), nil
}

// Rows exposes the detected row structure of a sheet without grading it.
// Reporting uses this to draw graded overlays aligned with the rows the
// engine actually saw.
func (e *Engine) Rows(imagePath string) ([]detection.Row, error) {
	img, err := e.cache.Load(imagePath)
	if err != nil {
		return nil, err
	}
	defer e.cache.Evict(imagePath)

	bin := imaging.Preprocess(img, e.cfg.Preprocess)
	return detection.GroupRows(detection.FindBubbles(bin, e.cfg.Filter), e.cfg.RowTolerance), nil
}
