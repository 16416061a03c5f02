package Queues

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop the item at the front of the queue. Returns EmptyQueueError
	//if there's nothing to pop.
	Pop() (T, error)
	//Peek at the front item without removing it. Returns the zero value
	//of T on an empty queue.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice that grows on demand.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current content.
	Shrink()
	//Clear the queue, keeping the backing slice.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
