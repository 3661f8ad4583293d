package storage

import "io"

// progressReader reports the share of total read so far as a 0-100 percentage. It only reports
// when the percentage grows.
type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	last       int
	onProgress func(percent int)
}

func newProgressReader(r io.Reader, total int64, onProgress func(percent int)) *progressReader {
	if onProgress == nil {
		onProgress = func(int) {}
	}

	return &progressReader{
		r:          r,
		total:      total,
		last:       -1,
		onProgress: onProgress,
	}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.advance(int64(n))
	return n, err
}

func (p *progressReader) advance(n int64) {
	p.read += n
	p.report(p.read)
}

func (p *progressReader) report(done int64) {
	percent := 100
	if p.total > 0 {
		percent = int(min(done*100/p.total, 100))
	}

	if percent > p.last {
		p.last = percent
		p.onProgress(percent)
	}
}
