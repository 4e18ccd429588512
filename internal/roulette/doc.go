// Package roulette implements a decelerating random selector.
//
// A run cycles a highlight across a fixed list of items, slowing down as it
// goes, and then snaps to an item chosen when the run was triggered:
//
//   - [Animator]: the step-driven state machine, free of any clock
//   - [Runner]: hosts an Animator on a [clock.Clock] with one pending timer
//   - [DelaySchedule]: the deceleration profile of a run
//
// # Example
//
//	anim, _ := roulette.NewAnimator(roulette.DefaultItems(), roulette.NewPicker(42))
//	delay, _ := anim.Trigger()
//	for {
//		time.Sleep(delay)
//		tick := anim.Step()
//		if tick.Done {
//			break
//		}
//		delay = tick.Next
//	}
//	fmt.Println(anim.State().Selected.Name)
//
// # Thread Safety
//
// Animator is NOT thread-safe; it expects a single driver such as a
// bubbletea Update loop. Runner serializes its own timer callbacks.
package roulette
