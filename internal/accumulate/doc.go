// Package accumulate builds artifact bodies from a user-driven stream of
// decisions. A Loop keeps asking for an entry kind until the sentinel kind is
// chosen, collects the fields of each entry, and renders the entry through one
// or more lanes (item templates) in lockstep, so the Nth fragment of every
// lane's Block always comes from the same answers.
package accumulate
