package bsdelta

import "sync"

// lzoSinkPool pools lzoSink instances so a caller diffing many (old, new)
// pairs back to back — Stepper-style or in a loop over Diff — doesn't
// reallocate the backing buffer for every instruction/add/extra stream.
var lzoSinkPool = sync.Pool{
	New: func() any {
		return &lzoSink{level: 6}
	},
}

// AcquirePooledLZOSink returns a pooled BlockSink backed by LZO1X-999
// level 6. Call ReleasePooledLZOSink once its Finish result has been
// consumed to return its buffer to the pool.
func AcquirePooledLZOSink() BlockSink {
	s := lzoSinkPool.Get().(*lzoSink)
	s.buf = s.buf[:0]
	return s
}

// ReleasePooledLZOSink returns a BlockSink obtained from
// AcquirePooledLZOSink to the pool. Passing a BlockSink that is not an LZO
// sink is a no-op.
func ReleasePooledLZOSink(sink BlockSink) {
	s, ok := sink.(*lzoSink)
	if !ok {
		return
	}
	s.buf = s.buf[:0]
	lzoSinkPool.Put(s)
}
