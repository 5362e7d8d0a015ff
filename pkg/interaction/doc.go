// Package interaction tracks user interaction with a form: which fields have been
// blurred and whether a submit was attempted or succeeded.
//
// The submission lifecycle is a small guarded state machine:
//
//	editing   --submit [valid]--> submitted
//	editing   --submit----------> attempted
//	attempted --submit [valid]--> submitted
//	attempted --submit----------> attempted
//	submitted --submit----------> submitted
//	*         --reset-----------> editing   (clears blurred paths)
//
// Transitions that share a state and event are tried in declaration order; the
// first whose guards all pass wins. The generic Machine is exported for callers
// that need their own lifecycle.
//
// # Usage
//
//	tr := interaction.NewTracker()
//	tr.Blur("email")
//	if !tr.Submit(false) {
//	    // tr.SubmitAttempted() == true, tr.Submitted() == false
//	}
//	tr.Reset()
//
// # Error Handling
//
// Machine.Fire returns *ErrNoTransition when no transition is declared for the
// current state and event, and *ErrTransitionRejected when guards refuse all of
// them. Use IsNoTransition and IsTransitionRejected to tell them apart.
package interaction
