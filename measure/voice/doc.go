// Package voice runs the LPC, formant and pitch kernels over a batch of
// in-memory frames.
//
// Each frame is analysed independently: pre-emphasis and Burg LPC feed the
// formant extractor, and the raw frame goes to YIN. Frames are fanned out to
// a bounded worker pool; results come back in input order and do not depend
// on the worker count.
//
// # Usage
//
//	a, err := voice.NewAnalyzer(voice.Config{SampleRate: 12000, Order: 12})
//	results, err := a.Analyze(ctx, signal)
//	summary := voice.Summarize(results)
package voice
