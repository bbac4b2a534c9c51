// Package form holds the state of the add-codes page independently of any
// rendering: the single and bulk inputs, the feedback banners, the one-time
// notice and the submission state machine
//
//	Idle -> Submitting -> Success | PartialSuccess | Error
//
// which returns to Idle on the next user action. A form runs at most one
// submission at a time and each submission is a single API call.
package form
