/*
Package session manages the interaction state of viewers.

A Manager serializes read-modify-write updates per session, locally with reference counted
mutexes and, when a DistributedLocker is configured, across replicas. Actions mirror what a
viewer does with the pointer: hover, leave, click, deselect, and choosing a state.
*/
package session
