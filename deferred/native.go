package deferred

import "github.com/vkngwrapper/rhicore/native"

// Native adapts a bare native object, such as a replaced descriptor table or a compiled pipeline,
// so it can be retired with an explicit stamp
type Native struct {
	Object native.Object
	Stamp  uint64
}

func (n Native) LastUse() uint64 {
	return n.Stamp
}

func (n Native) Release() {
	n.Object.Destroy()
}
