// Package services orchestrates repositories and models for the command
// layer. Services take raw user input, build value objects from it, apply
// the change to the entities and leave persistence to an explicit Flush.
package services
