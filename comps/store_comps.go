package comps

import (
	"reflect"
)

//*******************************************
// component io
//*******************************************

type IStoreable interface {
	_Store(path string)
}

func Store(comp IStoreable, path string) {
	comp._Store(path)
}

type ILoadable interface {
	_Load(path string)
}

func Load[T ILoadable](path string) T {
	typ := reflect.TypeOf((*T)(nil)).Elem().Elem()
	comp := reflect.New(typ).Interface().(T)
	comp._Load(path)
	return comp
}

type IRemoveable interface {
	_Remove(path string)
}

func Remove(comp IRemoveable, path string) {
	comp._Remove(path)
}
