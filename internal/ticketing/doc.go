// Package ticketing provides the availability side of daily-monitor.
//
// A Client queries a ticketing site's JSON availability endpoint for the
// open-slot count of a single event on a given day. A Scanner walks
// forward from today, one day at a time, recording each day's open count
// until it sees two consecutive fully-open days (nothing booked yet) or
// exhausts its lookahead bound.
package ticketing
