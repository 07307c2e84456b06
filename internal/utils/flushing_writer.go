package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter forwards writes and flushes the destination after each one when it supports Flush.
// It also records how many bytes reached the destination.
type FlushingWriter struct {
	writer       io.Writer
	bytesWritten int
	mutex        sync.Mutex
}

// NewFlushingWriter wraps writer. A nil writer yields nil and an existing FlushingWriter is returned unchanged.
func NewFlushingWriter(writer io.Writer) *FlushingWriter {
	if writer == nil {
		return nil
	}
	if flushingWriter, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return flushingWriter
	}
	return &FlushingWriter{writer: writer}
}

// Write delegates to the underlying writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	if flushingWriter == nil || flushingWriter.writer == nil {
		return 0, io.ErrClosedPipe
	}

	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	written, writeError := flushingWriter.writer.Write(data)
	flushingWriter.bytesWritten += written
	if writeError != nil {
		return written, writeError
	}

	if destination, flushable := flushingWriter.writer.(flusher); flushable {
		if flushError := destination.Flush(); flushError != nil {
			return written, flushError
		}
	}

	return written, nil
}

// BytesWritten reports the number of bytes accepted by the underlying writer.
func (flushingWriter *FlushingWriter) BytesWritten() int {
	if flushingWriter == nil {
		return 0
	}
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()
	return flushingWriter.bytesWritten
}
