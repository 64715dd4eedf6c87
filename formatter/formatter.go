package formatter

import (
	"sync"
)

// bufferPool is a pool of byte slices to reduce allocations in Render
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

func getBuffer() *[]byte {
	buf := bufferPool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

func putBuffer(buf *[]byte) {
	if cap(*buf) > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// itoa appends the decimal form of i, zero-padded on the left to wid
// digits. A negative wid means no padding.
func itoa(dst []byte, i int, wid int) []byte {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	return append(dst, b[bp:]...)
}
