package decoding

import (
	"bufio"
	"context"
	"io"
	"sync"
)

const feedBufferSize = 4096

var feeds = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, feedBufferSize)
	},
}

// Drain pulls the source through the chain and appends everything produced by the last
// stage to the buff. The source is read until its end even after the last coded stream
// is complete, so late failures (checksums, trailers, trailing garbage) aren't left
// unnoticed. The source itself is never closed.
//
// Returned errors are either *StageError or *SourceError.
func (c Chain) Drain(ctx context.Context, source io.Reader, buff []byte) (_ []byte, err error) {
	var reader io.Reader = ctxReader{ctx: ctx, source: source}

	// feed is the buffered input of the stage with the same index. Besides being the
	// io.ByteReader the codecs like, it's the only place where bytes left by a stage
	// after the end of its stream can be seen.
	feed := make([]*bufio.Reader, 0, len(c))
	decoders := make([]io.ReadCloser, 0, len(c))

	defer func() {
		for i := len(decoders) - 1; i >= 0; i-- {
			if closeErr := decoders[i].Close(); closeErr != nil && err == nil {
				err = c[i].label(closeErr)
			}
		}

		for _, f := range feed {
			f.Reset(nil)
			feeds.Put(f)
		}
	}()

	for _, stage := range c {
		f := feeds.Get().(*bufio.Reader)
		f.Reset(reader)
		feed = append(feed, f)

		decoder, decoderErr := stage.Codec.NewDecoder(f)
		if decoderErr != nil {
			return buff, stage.label(decoderErr)
		}

		decoders = append(decoders, decoder)
		reader = stageReader{stage: stage, decoder: decoder}
	}

	if buff, err = readAll(reader, buff); err != nil {
		return buff, err
	}

	for i := len(feed) - 1; i >= 0; i-- {
		n, copyErr := io.Copy(io.Discard, feed[i])
		if copyErr != nil {
			return buff, copyErr
		}

		if n > 0 {
			return buff, c[i].label(ErrTrailingData)
		}
	}

	return buff, nil
}

// readAll works the same way io.ReadAll does, except appending to the existing buffer.
func readAll(r io.Reader, buff []byte) ([]byte, error) {
	for {
		if len(buff) == cap(buff) {
			buff = append(buff, 0)[:len(buff)]
		}

		n, err := r.Read(buff[len(buff):cap(buff)])
		buff = buff[:len(buff)+n]
		switch err {
		case nil:
		case io.EOF:
			return buff, nil
		default:
			return buff, err
		}
	}
}

type stageReader struct {
	stage   Stage
	decoder io.Reader
}

func (s stageReader) Read(b []byte) (n int, err error) {
	n, err = s.decoder.Read(b)
	if err != nil && err != io.EOF {
		err = s.stage.label(err)
	}

	return n, err
}

// ctxReader stops reading as soon as the context is done. A read, which is already
// blocked, can be interrupted only by closing the stream by its owner.
type ctxReader struct {
	ctx    context.Context
	source io.Reader
}

func (c ctxReader) Read(b []byte) (n int, err error) {
	if err = c.ctx.Err(); err != nil {
		return 0, &SourceError{Err: err}
	}

	n, err = c.source.Read(b)
	if err != nil && err != io.EOF {
		err = &SourceError{Err: err}
	}

	return n, err
}
