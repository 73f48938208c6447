// Package dma
// Author: xitren
// License: Apache-2.0
//
// Descriptor-level plumbing between a ring.Buffer and an external write
// engine. A Reconciler reserves free regions of the backing storage for
// in-flight transfers, splitting them at the physical wrap point so each
// region can be handed to a flat DMA descriptor, and folds completed
// transfers back into the buffer's bookkeeping via UpdateHead.
package dma
