// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Contact is used to represent contact information
// Can be specified in Events, Todos, and Journals
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
type Contact = string

// Sequence is used to define the revision sequence number of the component
// Can be specified in Events, Todos, and Journals
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.4
type Sequence = int
