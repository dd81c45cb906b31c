// Package models defines the persisted data models of the local auth core.
package models
