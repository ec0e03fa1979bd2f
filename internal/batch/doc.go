// Package batch packs formatted StatsD records into datagram-sized groups.
//
// The packing is greedy: records are appended to the open group until the
// next one would bring it to or past capacity, at which point a new group is
// opened. No group ever reaches capacity, so every flushed buffer fits one
// datagram.
//
//	c := batch.NewCollector(transport.ReceiveBufferSize(), logger)
//	c.Add(domain.Format("requests", "1", domain.Counter))
//	for _, buf := range c.FlushAll() {
//	    _ = transport.Send(buf)
//	}
//	c.Reset()
package batch
