// Package repair computes advisory translations that would fix a misplaced
// floor element.
//
// Two heuristics are provided. [PushIntoEnvelope] moves an element that sticks
// out of the room back inside, iterating toward a "safe" polygon: the room
// shrunk by an inset margin so that a barely-touching placement does not count
// as fixed. [SeparateOverlap] tries the four axis-aligned moves that clear an
// overlap between two elements, cheapest first, and corrects each back into
// the room with [PushIntoEnvelope] when needed.
//
// Both are bounded and both may fail; failure is reported through the boolean
// result, never as an error. Neither modifies its inputs. The returned delta
// is a suggestion for whoever produced the plan, not something applied here.
package repair
