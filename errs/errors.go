package errs

var ErrNoChart = New("no chart has been rendered")

var ErrNoVectorContent = New("svg element not found", ':', "make sure the chart was rendered as vector output")

var ErrIndexOutOfRange = New("dataset index out of range")

var ErrUnknownChartType = New("unknown chart type")

var ErrEmptyImage = New("rasterized chart is empty")

var ErrNoFileWriter = New("file writer not configured for this environment")
