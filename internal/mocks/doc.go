// Package mocks provides hand-written test doubles for the capabilities the
// auth form calls. Each mock records its calls and lets tests override
// behavior through an Fn field.
package mocks
