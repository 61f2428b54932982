package game

import "sync"

type Cycler struct {
	sync.Mutex
	elements []string
	current  int
}

func NewCycler(elements []string) *Cycler {
	return &Cycler{elements: elements}
}

func (c *Cycler) Current() string {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	return c.elements[c.current]
}

func (c *Cycler) ForEach(function func(string)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Next() string {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	c.current = (c.current + 1) % len(c.elements)
	return c.elements[c.current]
}
