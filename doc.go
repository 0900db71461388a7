// Package satchel contains a stack, a queue and a bag, each a thin layer over a list.List.
//
// None of them are safe for concurrent use on their own. To share one between goroutines, build it
// on a Locked list:
//
//	q := satchel.NewQueueOn[int](satchel.NewLocked[int](list.New[int]()))
package satchel
