package container

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"go.uber.org/zap"

	"github.com/arloliu/idf/errs"
	"github.com/arloliu/idf/internal/pool"
)

// DecodeFile decodes the container stored at path.
//
// The file is read fully into a pooled buffer, or mapped read-only when WithMemoryMap is
// set, then handed to DecodeBytes. The file and any mapping are released before
// DecodeFile returns, on success and on every failure path.
func (d *Decoder) DecodeFile(path string) (records Records, err error) {
	if d.state != stateAwaitingData {
		return nil, errs.ErrDecoderUsed
	}

	f, err := os.Open(path)
	if err != nil {
		d.state = stateDone
		return nil, fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	if !d.cfg.memoryMap {
		// Records are copied out of the buffer by the block reader, so it can
		// go back to the pool as soon as decoding returns.
		buf := pool.GetFileBuffer()
		defer pool.PutFileBuffer(buf)

		if _, rerr := buf.ReadFrom(f); rerr != nil {
			d.state = stateDone
			return nil, fmt.Errorf("read container: %w", rerr)
		}

		return d.DecodeBytes(buf.Bytes())
	}

	info, err := f.Stat()
	if err != nil {
		d.state = stateDone
		return nil, fmt.Errorf("stat container: %w", err)
	}

	// Zero-length files cannot be mapped; decode them as empty input.
	if info.Size() == 0 {
		return d.DecodeBytes(nil)
	}

	mapped, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		d.state = stateDone
		d.cfg.logger.Error("failed to mmap container", zap.String("path", path), zap.Error(err))

		return nil, fmt.Errorf("mmap container: %w", err)
	}
	defer func() {
		if uerr := mapped.Unmap(); uerr != nil && err == nil {
			records, err = nil, fmt.Errorf("unmap container: %w", uerr)
		}
	}()

	return d.DecodeBytes(mapped)
}
