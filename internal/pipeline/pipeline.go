package pipeline

// Pipeline represents the ordered sequence of stages a translation unit
// passes through: lex, parse, transform, resolve, analyze.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order over initialCtx.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// The loop never stops early: a stage whose required input is
		// missing (e.g. the parser after a lex failure) just returns ctx
		// unchanged, so later stages that don't depend on it can still run
		// and add their own diagnostics.
	}
	return ctx
}
