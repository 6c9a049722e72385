// Package prompt is the user-interaction layer. A Driver asks yes/no,
// free-text and fixed-choice questions and returns the answer synchronously.
// Three drivers exist: a terminal driver built on survey, a plain numbered
// line driver for pipes and dumb terminals, and a scripted driver that replays
// a recorded answer stream so generation can run unattended.
package prompt
