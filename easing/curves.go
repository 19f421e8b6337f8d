package easing

import "math"

const (
	backOvershoot      = 1.70158
	backInOutScale     = 1.525
	elasticPeriod      = 0.3
	elasticInOutPeriod = elasticPeriod * 1.5
	elasticPower       = 10.0
)

func linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

func sine(t, b, c, d float64, typ Type) float64 {
	switch typ {
	case In:
		return -c*math.Cos(t/d*(math.Pi/2)) + c + b
	case Out:
		return c*math.Sin(t/d*(math.Pi/2)) + b
	default:
		return -c/2*(math.Cos(math.Pi*t/d)-1) + b
	}
}

func circular(t, b, c, d float64, typ Type) float64 {
	switch typ {
	case In:
		m := t / d
		return -c*(math.Sqrt(1-m*m)-1) + b
	case Out:
		m := t/d - 1
		return c*math.Sqrt(1-m*m) + b
	default:
		m := t / (d / 2)
		if m < 1 {
			return -c/2*(math.Sqrt(1-m*m)-1) + b
		}
		m -= 2
		return c/2*(math.Sqrt(1-m*m)+1) + b
	}
}

func quadratic(t, b, c, d float64, typ Type) float64 {
	switch typ {
	case In:
		m := t / d
		return c*m*m + b
	case Out:
		m := t / d
		return -c*m*(m-2) + b
	default:
		m := t / (d / 2)
		if m < 1 {
			return c/2*m*m + b
		}
		m--
		return -c/2*(m*(m-2)-1) + b
	}
}

func cubic(t, b, c, d float64, typ Type) float64 {
	switch typ {
	case In:
		m := t / d
		return c*m*m*m + b
	case Out:
		m := t/d - 1
		return c*(m*m*m+1) + b
	default:
		m := t / (d / 2)
		if m < 1 {
			return c/2*m*m*m + b
		}
		m -= 2
		return c/2*(m*m*m+2) + b
	}
}

func quartic(t, b, c, d float64, typ Type) float64 {
	switch typ {
	case In:
		m := t / d
		return c*m*m*m*m + b
	case Out:
		m := t/d - 1
		return -c*(m*m*m*m-1) + b
	default:
		m := t / (d / 2)
		if m < 1 {
			return c/2*m*m*m*m + b
		}
		m -= 2
		return -c/2*(m*m*m*m-2) + b
	}
}

func quintic(t, b, c, d float64, typ Type) float64 {
	switch typ {
	case In:
		m := t / d
		return c*m*m*m*m*m + b
	case Out:
		m := t/d - 1
		return c*(m*m*m*m*m+1) + b
	default:
		m := t / (d / 2)
		if m < 1 {
			return c/2*m*m*m*m*m + b
		}
		m -= 2
		return c/2*(m*m*m*m*m+2) + b
	}
}

// exponential special-cases both ends: 2^(-10) is not exactly zero.
func exponential(t, b, c, d float64, typ Type) float64 {
	switch typ {
	case In:
		if t == 0 {
			return b
		}
		return c*math.Pow(2, 10*(t/d-1)) + b
	case Out:
		if t == d {
			return b + c
		}
		return c*(-math.Pow(2, -10*t/d)+1) + b
	default:
		if t == 0 {
			return b
		}
		if t == d {
			return b + c
		}
		m := t / (d / 2)
		if m < 1 {
			return c/2*math.Pow(2, 10*(m-1)) + b
		}
		m--
		return c/2*(-math.Pow(2, -10*m)+2) + b
	}
}

func back(t, b, c, d float64, typ Type) float64 {
	s := backOvershoot
	switch typ {
	case In:
		m := t / d
		return c*m*m*((s+1)*m-s) + b
	case Out:
		m := t/d - 1
		return c*(m*m*((s+1)*m+s)+1) + b
	default:
		s *= backInOutScale
		m := t / (d / 2)
		if m < 1 {
			return c/2*(m*m*((s+1)*m-s)) + b
		}
		m -= 2
		return c/2*(m*m*((s+1)*m+s)+2) + b
	}
}

func bounce(t, b, c, d float64, typ Type) float64 {
	switch typ {
	case In:
		return c - bounceOut(d-t, 0, c, d) + b
	case Out:
		return bounceOut(t, b, c, d)
	default:
		if t < d/2 {
			return bounce(t*2, 0, c, d, In)*0.5 + b
		}
		return bounceOut(t*2-d, 0, c, d)*0.5 + c*0.5 + b
	}
}

func bounceOut(t, b, c, d float64) float64 {
	m := t / d
	switch {
	case m < 1/2.75:
		return c*(7.5625*m*m) + b
	case m < 2/2.75:
		m -= 1.5 / 2.75
		return c*(7.5625*m*m+0.75) + b
	case m < 2.5/2.75:
		m -= 2.25 / 2.75
		return c*(7.5625*m*m+0.9375) + b
	default:
		m -= 2.625 / 2.75
		return c*(7.5625*m*m+0.984375) + b
	}
}

// elastic is an exponentially decaying sine wave; amplitude equals c and
// the period scales with d.
func elastic(t, b, c, d float64, typ Type) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	a := c
	switch typ {
	case In:
		p := d * elasticPeriod
		s := p / 4
		m := t/d - 1
		post := a * math.Pow(2, elasticPower*m)
		return -(post * math.Sin((m*d-s)*(2*math.Pi)/p)) + b
	case Out:
		p := d * elasticPeriod
		s := p / 4
		m := t / d
		return a*math.Pow(2, -elasticPower*m)*math.Sin((m*d-s)*(2*math.Pi)/p) + c + b
	default:
		p := d * elasticInOutPeriod
		s := p / 4
		m := t / (d / 2)
		if m == 2 {
			return b + c
		}
		m--
		if m < 0 {
			post := a * math.Pow(2, elasticPower*m)
			return -0.5*(post*math.Sin((m*d-s)*(2*math.Pi)/p)) + b
		}
		post := a * math.Pow(2, -elasticPower*m)
		return post*math.Sin((m*d-s)*(2*math.Pi)/p)*0.5 + c + b
	}
}
