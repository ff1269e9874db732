// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// queue is an unbounded single-producer/single-consumer FIFO of request
// frames. The reader goroutine must never block on a slow consumer, so
// a plain buffered channel is not enough; an intermediate goroutine
// buffers overflow in a slice. Closing in drains the buffer to out and
// then closes out.
type queue struct {
	in  chan Message
	out chan Message
}

func newQueue() *queue {
	q := &queue{
		in:  make(chan Message),
		out: make(chan Message),
	}
	go q.run()
	return q
}

func (q *queue) run() {
	defer close(q.out)
	var buf []Message
	for {
		if len(buf) == 0 {
			msg, ok := <-q.in
			if !ok {
				return
			}
			buf = append(buf, msg)
		}
		select {
		case msg, ok := <-q.in:
			if !ok {
				for _, m := range buf {
					q.out <- m
				}
				return
			}
			buf = append(buf, msg)
		case q.out <- buf[0]:
			buf = buf[1:]
			if len(buf) == 0 {
				// Let the backing array go once drained.
				buf = nil
			}
		}
	}
}
