package body

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/body/config"
	"github.com/indigo-web/body/http/codec"
	"github.com/indigo-web/body/http/form"
	"github.com/indigo-web/body/http/method"
	"github.com/indigo-web/body/http/mime"
	"github.com/indigo-web/body/internal/decoding"
	"github.com/indigo-web/body/internal/formdata"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"
)

// Parser reads and parses request bodies. It holds no per-request state, so a single
// instance is safe for concurrent use.
type Parser struct {
	cfg        *config.Config
	table      codec.Table
	parseJSON  JSONFunc
	customJSON bool
	logger     *zap.Logger
	observer   Observer
	buffers    bytebufferpool.Pool
}

// New returns a parser with the given configuration. Nil config is the same as config.Default().
// The only errors returned are of the Configuration kind.
func New(cfg *config.Config, opts ...Option) (*Parser, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	table, err := codec.NewTable(cfg.Body.Codings...)
	if err != nil {
		return nil, &Error{Kind: Configuration, Stage: -1, Err: err}
	}

	p := &Parser{
		cfg:      cfg,
		table:    table,
		logger:   zap.NewNop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.customJSON && p.parseJSON == nil {
		return nil, &Error{Kind: Configuration, Stage: -1, Err: ErrNilJSONParser}
	}

	if !p.customJSON {
		p.parseJSON = newJSONParser(cfg.Body.JSON.UseNumber)
	}

	p.logger = p.logger.With(zap.String("middleware", "body"))

	return p, nil
}

// Parse reads the request body and parses it accordingly to its Content-Type. It returns
// nil, nil if the body wasn't meant to be read: the method has no body semantics, the stream
// is already closed or the Content-Type isn't one of application/json, text/plain or
// application/x-www-form-urlencoded. Otherwise, either the body or an *Error is returned.
//
// The context is checked before every read of the body stream. A read, which is already
// blocked, is interrupted only by closing the stream, which is the host's duty.
func (p *Parser) Parse(ctx context.Context, request Request) (Body, error) {
	outcome := p.parse(ctx, request)
	p.observer.Observe(outcome)

	if outcome.Err != nil {
		return nil, outcome.Err
	}

	return outcome.Body, nil
}

func (p *Parser) parse(ctx context.Context, request Request) Outcome {
	if reason, skip := p.gate(request); skip {
		return Outcome{State: Skipped, Reason: reason}
	}

	contentType := mime.Parse(request.ContentType())
	kind := kindOf(contentType)
	if kind == KindNone {
		p.logger.Debug("Unsupported Content-Type", zap.String("content_type", contentType))
		return Outcome{State: Skipped, Reason: ReasonContentType}
	}

	codings := request.ContentEncoding()
	outcome := Outcome{Kind: kind, Codings: codings}

	chain, err := decoding.Build(p.table, codings, p.cfg.Headers.MaxEncodingTokens)
	if err != nil {
		p.logger.Debug("Unsupported encoding", zap.Strings("encoding", codings), zap.Error(err))
		return p.fail(outcome, newEncodingError(contentType, err))
	}

	buff := p.acquire()
	defer p.release(buff)

	data, err := chain.Drain(ctx, request.Body(), buff.B)
	buff.B = data
	outcome.Size = len(data)
	if err != nil {
		p.logger.Debug("Decoding failed", zap.Strings("encoding", codings), zap.Error(err))
		return p.fail(outcome, newDrainError(contentType, err))
	}

	body, err := p.decode(kind, data)
	if err != nil {
		p.logger.Debug(
			"Request body does not match provided Content-Type",
			zap.String("content_type", contentType),
			zap.Error(err),
		)

		return p.fail(outcome, &Error{
			Kind:        BodyMismatch,
			ContentType: contentType,
			Stage:       -1,
			Err:         err,
		})
	}

	outcome.State = Parsed
	outcome.Body = body

	return outcome
}

// gate decides whether the body must be read at all.
func (p *Parser) gate(request Request) (reason string, skip bool) {
	m := request.Method()
	if len(m) == 0 {
		m = method.GET.String()
	}

	if method.Bodiless(method.Parse(m)) {
		p.logger.Debug("Unsupported method", zap.String("method", m))
		return ReasonMethod, true
	}

	if request.Closed() {
		p.logger.Debug("Skip parsing", zap.String("method", m), zap.String("reason", "stream is closed"))
		return ReasonClosed, true
	}

	return "", false
}

// replacementChar substitutes every run of invalid UTF-8 in a body.
var replacementChar = []byte("\uFFFD")

func (p *Parser) decode(kind Kind, data []byte) (Body, error) {
	if !utf8.Valid(data) {
		data = bytes.ToValidUTF8(data, replacementChar)
	}

	switch kind {
	case KindJSON:
		value, err := p.parseJSON(data)
		if err != nil {
			return nil, err
		}

		return JSON{Value: value}, nil
	case KindForm:
		// the buffer is going to be reused, so names and values must point
		// into a memory of their own
		src := string(data)
		f := make(form.Form, 0, p.cfg.Body.Form.EntriesPrealloc)
		f, _ = formdata.ParseURLEncoded(f, uf.S2B(src), nil)
		for i := range f {
			f[i].Name = toValidUTF8(f[i].Name)
			f[i].Value = toValidUTF8(f[i].Value)
		}

		return Form{Form: f}, nil
	case KindText:
		return Text(data), nil
	default:
		panic("BUG: decoding a body of an unsupported kind")
	}
}

// toValidUTF8 exists because percent-encoded octets may decode into anything.
func toValidUTF8(str string) string {
	if utf8.ValidString(str) {
		return str
	}

	return strings.ToValidUTF8(str, string(replacementChar))
}

func (p *Parser) fail(outcome Outcome, err *Error) Outcome {
	outcome.State = Failed
	outcome.Err = err

	return outcome
}

func (p *Parser) acquire() *bytebufferpool.ByteBuffer {
	buff := p.buffers.Get()
	if cap(buff.B) < p.cfg.Body.BufferPrealloc {
		buff.B = make([]byte, 0, p.cfg.Body.BufferPrealloc)
	}

	return buff
}

func (p *Parser) release(buff *bytebufferpool.ByteBuffer) {
	if cap(buff.B) > p.cfg.Body.MaxBuffersPooled {
		return
	}

	p.buffers.Put(buff)
}

func newEncodingError(contentType string, err error) *Error {
	e := &Error{
		Kind:        UnsupportedEncoding,
		ContentType: contentType,
		Stage:       -1,
		Err:         err,
	}

	var unsupported *decoding.UnsupportedError
	if errors.As(err, &unsupported) {
		e.Coding, e.Stage = unsupported.Token, unsupported.Index
	}

	return e
}

func newDrainError(contentType string, err error) *Error {
	e := &Error{
		ContentType: contentType,
		Stage:       -1,
		Err:         err,
	}

	var (
		stageErr  *decoding.StageError
		sourceErr *decoding.SourceError
	)

	switch {
	case errors.As(err, &sourceErr):
		e.Kind = Aborted
	case errors.As(err, &stageErr):
		e.Kind = Decompression
		e.Coding, e.Stage = stageErr.Token, stageErr.Index
	default:
		e.Kind = Decompression
	}

	return e
}

func newJSONParser(useNumber bool) JSONFunc {
	api := json.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		UseNumber:              useNumber,
	}.Froze()

	return func(data []byte) (value any, err error) {
		err = api.Unmarshal(data, &value)
		return value, err
	}
}
