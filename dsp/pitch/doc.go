// Package pitch estimates the fundamental frequency of a frame with YIN.
//
// YIN squares the difference between the frame and lagged copies of itself,
// normalises the result by its running mean (the cumulative mean normalised
// difference, CMND) and picks the first lag whose CMND dips below an absolute
// threshold. The lag is refined to the bottom of that dip and then by
// parabolic interpolation.
//
// Frames where no lag in the search range crosses the threshold are reported
// as Unvoiced rather than as an error.
package pitch
