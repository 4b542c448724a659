package common

// HeaderRows is the number of leading grid rows that hold column titles
// rather than records.
const HeaderRows = 1
