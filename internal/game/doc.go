// Package game implements the blackjack round state machine and its
// supporting entities: seats, hands, the bot policy, the turn coordinator,
// and the movable animation tasks that game logic interleaves with.
//
// The engine is tick-driven and single-writer. Each call to Table.Step
// performs at most one phase-appropriate logic step, then advances every
// in-flight movable and promotes the finished ones. Logic that must wait
// for animations gates on the in-flight count; nothing else synchronizes.
//
// Rendering, input capture and zone layout live outside this package. The
// engine exposes Drawable positions and visual keys, reads named zone
// rectangles, and publishes a UIMode telling the input layer which of
// PlaceHumanBet and ApplyHumanAction is currently valid.
package game
