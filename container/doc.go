// Package container provides two growable, array-backed containers:
//
//   - Queue, a FIFO queue backed by a circular buffer.
//   - Stack, a LIFO stack backed by a linear array.
//
// Both start with a capacity of 8, double when they fill up, and halve when
// fewer than half of their slots are in use, never going below the initial
// capacity. Growth is computed with overflow-checked arithmetic: if doubling
// would overflow, the capacity grows by a fixed step of 32 instead, and if
// that overflows as well the insert fails with ErrCapacityExhausted.
//
// Both containers keep at least one slot free. For the Queue this is what lets
// head == tail mean "empty" without a separate flag.
//
// The two containers signal emptiness differently. Queue.Peek and Queue.Remove
// report an empty queue through their boolean result, while Stack.Peek and
// Stack.Pop fail with ErrEmptyStack.
//
// Neither container is safe for concurrent use.
package container
