package cache

// lruNode is a node in a doubly-linked LRU list. It carries its key so
// the tail can be evicted from the parent map.
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// lruList orders nodes from most recently used (head) to least (tail).
// The list is not thread-safe; Cache guards it.
type lruList[K comparable, V any] struct {
	head *lruNode[K, V]
	tail *lruNode[K, V]
	len  int
}

// pushFront inserts a new node at the front.
func (l *lruList[K, V]) pushFront(key K, value V) *lruNode[K, V] {
	node := &lruNode[K, V]{key: key, value: value, next: l.head}
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.len++
	return node
}

// moveToFront marks node as most recently used.
func (l *lruList[K, V]) moveToFront(node *lruNode[K, V]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	node.next = l.head
	l.head.prev = node
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// removeOldest unlinks and returns the tail, or nil for an empty list.
func (l *lruList[K, V]) removeOldest() *lruNode[K, V] {
	node := l.tail
	if node != nil {
		l.unlink(node)
	}
	return node
}

func (l *lruList[K, V]) unlink(node *lruNode[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}
